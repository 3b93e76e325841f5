package main

import (
	"stamply/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.StoreModel{},
		model.UserModel{},
		model.StoreDeviceModel{},
		model.LedgerEntryModel{},
		model.PointBalanceModel{},
		model.ScanDedupMarkerModel{},
		model.PendingScanModel{},
		model.SuspiciousScanModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
