package main

import (
	"log"

	"train-component-manager/internal/config"
	"train-component-manager/internal/database"
	"train-component-manager/internal/database/models"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// seedComponent is one catalog row of the initial data set.
type seedComponent struct {
	Name              string
	UniqueNumber      string
	CanAssignQuantity bool
}

// Initial catalog of train parts. Quantity starts unassigned even for
// quantity-assignable components; it is only ever set through the API.
var seedComponents = []seedComponent{
	{"Engine", "ENG123", false},
	{"Passenger Car", "PAS456", false},
	{"Freight Car", "FRT789", false},
	{"Wheel", "WHL101", true},
	{"Seat", "STS234", true},
	{"Window", "WIN567", true},
	{"Door", "DR123", true},
	{"Control Panel", "CTL987", true},
	{"Light", "LGT456", true},
	{"Brake", "BRK789", true},
	{"Bolt", "BLT321", true},
	{"Nut", "NUT654", true},
	{"Engine Hood", "EH789", false},
	{"Axle", "AX456", false},
	{"Piston", "PST789", false},
	{"Handrail", "HND234", true},
	{"Step", "STP567", true},
	{"Roof", "RF123", false},
	{"Air Conditioner", "AC789", false},
	{"Flooring", "FLR456", false},
	{"Mirror", "MRR789", true},
	{"Horn", "HRN321", false},
	{"Coupler", "CPL654", false},
	{"Hinge", "HNG987", true},
	{"Ladder", "LDR456", true},
	{"Paint", "PNT789", false},
	{"Decal", "DCL321", true},
	{"Gauge", "GGS654", true},
	{"Battery", "BTR987", false},
	{"Radiator", "RDR456", false},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel: logger.Warn,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	inserted, err := seed(db)
	if err != nil {
		log.Fatalf("Failed to seed train components: %v", err)
	}

	log.Printf("Seed complete: %d of %d components inserted (rest already present)", inserted, len(seedComponents))
}

// seed inserts the catalog, skipping rows whose unique number already exists
// so the script can be re-run safely.
func seed(db *gorm.DB) (int, error) {
	inserted := 0
	for _, sc := range seedComponents {
		component := models.TrainComponent{
			Name:              sc.Name,
			UniqueNumber:      sc.UniqueNumber,
			CanAssignQuantity: sc.CanAssignQuantity,
		}
		res := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "unique_number"}},
			DoNothing: true,
		}).Create(&component)
		if res.Error != nil {
			return inserted, res.Error
		}
		inserted += int(res.RowsAffected)
	}
	return inserted, nil
}
