package seeds

import (
	courses "sscacademy_backend/internals/seeds/lms/courses"
	users "sscacademy_backend/internals/seeds/lms/users"

	"gorm.io/gorm"
)

// RunAllSeeds dipanggil sekali saat boot dengan RUN_SEEDS=true untuk mengisi
// data demo (environment staging / onboarding LGU baru).
func RunAllSeeds(db *gorm.DB) {
	//* User
	users.SeedUsersFromJSON(db, "internals/seeds/lms/users/data_users.json")

	//* Course + modul + lesson
	courses.SeedCoursesFromJSON(db, "internals/seeds/lms/courses/data_courses.json")
}
