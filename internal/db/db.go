package db

import (
	"log"
	"os"

	"barcabuzz/internal/models"
	"barcabuzz/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=barcabuzz port=5432 sslmode=disable TimeZone=UTC"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed initial categories
	seedCategories()
}

// Migrate 建表，测试环境也复用同一组模型
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.AuthorProfile{},
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.Comment{},
		&models.PostLike{},
		&models.Bookmark{},
	)
}

func seedCategories() {
	// 检查是否已有分类数据
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		log.Println("Categories already seeded, skipping")
		return
	}

	// 创建预设分类
	categories := []models.Category{
		{Name: "Match Reports", Description: "Full-time breakdowns of every Barça fixture", Icon: "⚽", Color: "#A50044"},
		{Name: "Transfer News", Description: "Signings, exits and the rumour mill", Icon: "🔁", Color: "#004D98"},
		{Name: "La Masia", Description: "Academy prospects and youth football", Icon: "🌱", Color: "#EDBB00"},
		{Name: "Opinion", Description: "Columns, tactics talk and hot takes", Icon: "💬", Color: "#DC143C"},
	}

	for _, category := range categories {
		category.Slug = utils.Slugify(category.Name)
		if err := DB.Create(&category).Error; err != nil {
			log.Printf("Failed to create category %s: %v", category.Name, err)
		}
	}
	log.Println("Initial categories created successfully")
}
