package seeds

import (
	"gorm.io/gorm"

	users "hader_backend/internals/seeds/users"
)

// RunAllSeeds isi data awal (akun admin + contoh teacher/student).
// Insert idempotent per email, aman dijalankan berulang.
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
}
