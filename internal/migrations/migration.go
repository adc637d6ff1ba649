package migrations

import (
	"fmt"
	"log"
	"table_order/internal/database"
	"table_order/internal/models"
	"table_order/internal/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seeder is what default data is created through, so the usual validation
// and password hashing apply.
type Seeder struct {
	Users   services.UserService
	Catalog services.CatalogService
	Tables  services.TableService
}

type defaultUser struct {
	username string
	password string
	role     models.UserRole
}

var defaultUsers = []defaultUser{
	{"admin", "admin123", models.RoleAdmin},
	{"cuisinier", "cook123", models.RoleCook},
	{"serveur", "waiter123", models.RoleWaiter},
}

type defaultItem struct {
	category    string
	name        string
	description string
	price       string
	fr          string
}

var defaultMenu = []defaultItem{
	{"Starters", "Harira", "Tomato and lentil soup", "3.50", "Harira"},
	{"Starters", "Zaalouk", "Smoked aubergine salad", "4.00", "Zaalouk d'aubergines"},
	{"Mains", "Chicken tagine", "Preserved lemon and olives", "12.00", "Tajine de poulet"},
	{"Mains", "Couscous royal", "Seven vegetables and lamb", "14.50", "Couscous royal"},
	{"Drinks", "Mint tea", "Fresh mint, lightly sweet", "2.00", "Thé à la menthe"},
	{"Desserts", "Chebakia", "Sesame honey pastry", "3.00", "Chebakia au miel"},
}

const defaultTables = 10

// RunMigrations brings the schema up to date. With reset, every table is
// dropped first.
func RunMigrations(db *gorm.DB, reset bool) error {
	log.Println("Running database migrations...")

	if reset {
		log.Println("Dropping existing tables...")
		all := database.Models()
		// children first
		for i := len(all) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(all[i]); err != nil {
				log.Printf("Warning: Error dropping tables: %v", err)
			}
		}
	}

	log.Println("Creating tables...")
	if err := database.Migrate(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// CreateDefaultData creates the staff accounts, tables and a sample menu.
// It does nothing once the admin account exists.
func CreateDefaultData(seed Seeder) error {
	log.Println("Creating default data...")

	if existing, err := seed.Users.GetUserByUsername("admin"); err == nil && existing != nil {
		log.Println("Default data already exists")
		return nil
	}

	for _, u := range defaultUsers {
		user := &models.User{Username: u.username, Role: u.role}
		if err := seed.Users.CreateUser(user, u.password); err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.username, err)
		}
		log.Printf("Created %s account %q (password %q)", u.role, u.username, u.password)
	}

	for number := uint(1); number <= defaultTables; number++ {
		if _, err := seed.Tables.CreateTable(number); err != nil {
			return fmt.Errorf("failed to create table %d: %w", number, err)
		}
	}

	categories := map[string]uint{}
	for _, item := range defaultMenu {
		if _, ok := categories[item.category]; !ok {
			category, err := seed.Catalog.CreateCategory(item.category)
			if err != nil {
				return err
			}
			categories[item.category] = category.ID
		}
		menuItem := &models.MenuItem{
			Name:        item.name,
			Description: item.description,
			Price:       decimal.RequireFromString(item.price),
			CategoryID:  categories[item.category],
			Translations: map[string]interface{}{
				"fr": map[string]interface{}{"name": item.fr},
			},
		}
		if err := seed.Catalog.CreateMenuItem(menuItem); err != nil {
			return err
		}
	}

	log.Println("Default data created successfully!")
	return nil
}
