package main

import (
	"directorio/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ResidenceModel{},
		model.DirectorModel{},
		model.UserModel{},
		model.FavoriteModel{},
		model.ContactEnquiryModel{},
		model.NewsPostModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
