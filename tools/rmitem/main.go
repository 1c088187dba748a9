package main

import (
	"fmt"
	"log"

	"github.com/asdine/storm/v3"
	"github.com/mdouchement/pinpost/internal/database"
	"github.com/mdouchement/pinpost/internal/model"
	"github.com/muesli/coral"
	"github.com/pkg/errors"
)

func main() {
	c := &coral.Command{
		Use:   "rmitem DATABASE ITEM_ID",
		Short: "Remove an item from the database",
		Args:  coral.ExactArgs(2),
		RunE: func(_ *coral.Command, args []string) error {
			//
			//
			fmt.Println("Opening", args[0])
			db, err := storm.Open(args[0], database.StormCodec)
			if err != nil {
				return errors.Wrap(err, "could not open database")
			}
			defer db.Close()

			if !model.ValidID(args[1]) {
				fmt.Println("Malformed item id")
				return nil
			}

			// Fetch item
			var item model.Item
			err = db.One("ID", args[1], &item)
			if err != nil {
				if err == storm.ErrNotFound {
					fmt.Println("No item for this id")
					return nil
				}
				return errors.Wrap(err, "find item by id")
			}

			fmt.Println("Item found:", item.Name)

			// Delete item
			err = db.DeleteStruct(&item)
			if err != nil && err != storm.ErrNotFound {
				return errors.Wrap(err, "delete item")
			}
			fmt.Println("Item removed")

			return nil
		},
	}

	if err := c.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}
