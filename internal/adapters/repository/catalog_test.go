package repository_test

import (
	"context"
	"testing"

	"github.com/platterhq/platter/internal/adapters/repository"
	"github.com/platterhq/platter/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryCatalog(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty catalog", t, func() {
		cat := repository.NewInMemoryCatalog()

		Convey("Then it starts empty at generation zero", func() {
			So(cat.All(ctx), ShouldBeEmpty)
			So(cat.Count(ctx), ShouldEqual, 0)
			So(cat.Generation(ctx), ShouldEqual, 0)
		})

		Convey("When replacing with a collection", func() {
			cat.Replace(ctx, []model.Recipe{
				{ID: 1, Title: "Pizza"},
				{ID: 2, Title: "Tacos"},
			})

			Convey("Then the collection and generation update", func() {
				So(cat.Count(ctx), ShouldEqual, 2)
				So(cat.Generation(ctx), ShouldEqual, 1)
			})

			Convey("Then order is preserved", func() {
				all := cat.All(ctx)
				So(all[0].ID, ShouldEqual, 1)
				So(all[1].ID, ShouldEqual, 2)
			})

			Convey("And replacing again bumps the generation", func() {
				cat.Replace(ctx, []model.Recipe{{ID: 9, Title: "Stew"}})
				So(cat.Count(ctx), ShouldEqual, 1)
				So(cat.Generation(ctx), ShouldEqual, 2)
			})
		})

		Convey("When replacing with duplicate ids", func() {
			cat.Replace(ctx, []model.Recipe{
				{ID: 1, Title: "Pizza"},
				{ID: 1, Title: "Impostor Pizza"},
				{ID: 2, Title: "Tacos"},
			})

			Convey("Then the first occurrence wins", func() {
				all := cat.All(ctx)
				So(all, ShouldHaveLength, 2)
				So(all[0].Title, ShouldEqual, "Pizza")
			})
		})

		Convey("When mutating a returned snapshot", func() {
			cat.Replace(ctx, []model.Recipe{{ID: 1, Title: "Pizza"}})
			snap := cat.All(ctx)
			snap[0].Title = "Hacked"

			Convey("Then the stored collection is untouched", func() {
				So(cat.All(ctx)[0].Title, ShouldEqual, "Pizza")
			})
		})
	})
}
