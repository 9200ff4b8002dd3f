package db

import (
	"log"
	"time"

	"github.com/familyexpressec/courier-api/internal/config"
	"github.com/familyexpressec/courier-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.FamilyMember{},
		&models.Shipment{},
		&models.TrackingEvent{},
		&models.CustomerAccount{},
		&models.PreAlert{},
		&models.PackageItem{},
		&models.AuditLog{},
		&models.ChatMessage{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedPackageItems(db)

	return db
}

// Catálogo base de artículos declarables. Solo inserta lo que falta;
// lo que el staff ya editó no se toca.
func seedPackageItems(db *gorm.DB) {
	items := []models.PackageItem{
		{Slug: "ropa", Name: "Ropa", Icon: "👕", Category: "Vestimenta"},
		{Slug: "zapatos", Name: "Zapatos", Icon: "👟", Category: "Vestimenta"},
		{Slug: "vitaminas", Name: "Vitaminas y Suplementos", Icon: "💊", Category: "Salud"},
		{Slug: "perfumes", Name: "Perfumes", Icon: "🧴", Category: "Cuidado Personal"},
		{Slug: "medicinas", Name: "Medicinas", Icon: "💉", Category: "Salud"},
		{Slug: "alimentos", Name: "Alimentos Sellados", Icon: "🥫", Category: "Alimentos"},
		{Slug: "cosmeticos", Name: "Cosméticos", Icon: "💄", Category: "Cuidado Personal"},
		{Slug: "accesorios", Name: "Accesorios", Icon: "⌚", Category: "Varios"},
		{Slug: "juguetes", Name: "Juguetes", Icon: "🧸", Category: "Varios"},
		{Slug: "libros", Name: "Libros", Icon: "📚", Category: "Educación"},
	}

	for _, item := range items {
		var count int64
		db.Model(&models.PackageItem{}).Where("slug = ?", item.Slug).Count(&count)
		if count == 0 {
			item.Active = true
			if err := db.Create(&item).Error; err != nil {
				log.Printf("seed package item %s: %v", item.Slug, err)
			}
		}
	}
}
