package factory

import (
	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	controllers "github.com/moneymap/moneymap-backend/internal/presentation/controllers/auth"
)

func MakeSignupController(directory *accounts.Directory) *controllers.SignupController {
	return controllers.NewSignupController(directory)
}

func MakeLoginController(directory *accounts.Directory) *controllers.LoginController {
	return controllers.NewLoginController(directory)
}

func MakeLogoutController(directory *accounts.Directory) *controllers.LogoutController {
	return controllers.NewLogoutController(directory)
}

func MakeChangePasswordController(directory *accounts.Directory) *controllers.ChangePasswordController {
	return controllers.NewChangePasswordController(directory)
}
