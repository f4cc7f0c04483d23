package initializers

import (
	"log"
	"os"

	"github.com/jubleh/storefront-core/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectToDB opens the profile-local cart database. The store is a
// single sqlite file scoped to one device profile; there is no shared
// server database on the client side of checkout.
func ConnectToDB() {
	path := os.Getenv("CART_DB_PATH")
	if path == "" {
		path = "jubleh.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open cart database at %s: %v", path, err)
	}
	DB = db
}

func SyncDatabase() {
	DB.AutoMigrate(&storage.CartRecord{})
	log.Println("Database synced successfully.")
}
