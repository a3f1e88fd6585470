package main

import (
	"log"

	"shop/internal/config"
	"shop/internal/handler"
	"shop/internal/infra/db"
	infraRepo "shop/internal/infra/repository"
	"shop/internal/infra/storage"
	"shop/internal/server"
	"shop/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい
	_ = godotenv.Load()
	cfg := config.Load()

	//DB接続とマイグレーション
	gormDB, err := db.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	//画像ディレクトリ
	store, err := storage.NewImageStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload dir init failed: %v", err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, store)
	orderUC := usecase.NewOrderUsecase(orderRepo)
	imageUC := usecase.NewImageUsecase(store)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	orderH := handler.NewOrderHandler(orderUC)
	imageH := handler.NewImageHandler(imageUC)
	pageH := handler.NewPageHandler(cfg.StaticDir, cfg.UploadDir)

	//Server起動
	e := server.New(productH, orderH, imageH, pageH)
	if err := server.Start(e, cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
