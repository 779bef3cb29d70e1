package main

import (
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	reward "reward_wallet_back"
	"reward_wallet_back/pkg/handler"
	"reward_wallet_back/pkg/repository"
	"reward_wallet_back/pkg/service"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	if err := godotenv.Load(); err != nil {
		logrus.Infof("no .env file loaded: %s", err)
	}

	if err := InitConfig(); err != nil {
		logrus.Fatalf("failed to read config: %s", err.Error())
	}

	db, err := repository.NewPostgresDB(repository.Config{
		Host:     viper.GetString("db.host"),
		Port:     viper.GetString("db.port"),
		Username: viper.GetString("db.username"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   viper.GetString("db.dbname"),
		SSLMode:  viper.GetString("db.sslmode"),
	})
	if err != nil {
		logrus.Fatalf("failed to connect to postgres: %s", err.Error())
	}
	logrus.Info("database connected")

	repos := repository.NewRepository(db)
	services := service.NewService(repos, withdrawalConfig())
	handlers := handler.NewHandler(services)

	srv := new(reward.Server)
	logrus.Infof("starting server on port %s", os.Getenv("PORT"))
	if err := srv.Run(os.Getenv("PORT"), handlers.InitRoute()); err != nil {
		logrus.Fatalf("server stopped: %s", err)
	}
}

func InitConfig() error {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

func withdrawalConfig() service.WithdrawalConfig {
	cfg := service.DefaultWithdrawalConfig()
	if v := viper.GetInt64("withdrawal.min_amount"); v > 0 {
		cfg.Limits.Min = decimal.NewFromInt(v)
	}
	if v := viper.GetInt64("withdrawal.max_amount"); v > 0 {
		cfg.Limits.Max = decimal.NewFromInt(v)
	}
	if v := viper.GetInt("withdrawal.page_size"); v > 0 {
		cfg.PageSize = v
	}
	return cfg
}
