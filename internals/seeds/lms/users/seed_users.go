package users

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"sscacademy_backend/internals/features/lms/users/model"
)

type UserSeed struct {
	UserName         string `json:"user_name"`
	UserEmail        string `json:"user_email"`
	UserOrganization string `json:"user_organization"`
	UserType         string `json:"user_type"`
	UserRegion       string `json:"user_region"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_email = ?", data.UserEmail).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.UserEmail)
			continue
		}

		user := model.UserModel{
			UserName:         data.UserName,
			UserEmail:        data.UserEmail,
			UserOrganization: data.UserOrganization,
			UserType:         data.UserType,
			UserRegion:       data.UserRegion,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.UserEmail, err)
			continue
		}
		log.Printf("✅ User '%s' berhasil di-seed.", data.UserEmail)
	}
}
