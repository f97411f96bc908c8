package setup

import (
	"net/http"
	"os"

	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/infra/db/mongodb/helpers"
	"github.com/moneymap/moneymap-backend/internal/infra/db/mongodb/user_repository"
	"github.com/moneymap/moneymap-backend/internal/infra/session"
	"github.com/moneymap/moneymap-backend/internal/setup/config"
	"github.com/moneymap/moneymap-backend/internal/utils"
)

func Server() *http.ServeMux {
	mux := http.NewServeMux()

	db := helpers.MongoHelper(os.Getenv("MONGO_URL"), os.Getenv("MONGO_DATABASE"))

	users := user_repository.NewUserMongoRepository(db)
	users.EnsureIndexes()

	store := ledger.NewStore(users)
	sessions := session.NewRedisSessionRepository(os.Getenv("REDIS_URL"))
	directory := accounts.NewDirectory(users, sessions, utils.NewAccessTokenUtil())

	config.SetupRoutes(mux, store, directory)

	return mux
}
