package migration

import (
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.UserIdentityModel{},
		&models.SessionModel{},
	}
}
