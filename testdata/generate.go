package main

import (
	"log"
	"os"

	"github.com/parquet-go/parquet-go"
)

type LoginRow struct {
	UserID       int64  `parquet:"user_id"`
	KitID        int64  `parquet:"kit_id"`
	LoginDate    string `parquet:"login_date"`
	SessionCount int64  `parquet:"session_count"`
}

func main() {
	logins := []LoginRow{
		{UserID: 1, KitID: 2, LoginDate: "2016-03-01", SessionCount: 5},
		{UserID: 1, KitID: 2, LoginDate: "2016-03-02", SessionCount: 6},
		{UserID: 2, KitID: 3, LoginDate: "2017-06-25", SessionCount: 1},
		{UserID: 3, KitID: 1, LoginDate: "2016-03-02", SessionCount: 0},
		{UserID: 3, KitID: 4, LoginDate: "2018-07-03", SessionCount: 5},
	}

	file, err := os.Create("logins.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[LoginRow](file)
	defer writer.Close()

	if _, err := writer.Write(logins); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated logins.parquet with %d rows", len(logins))
}
