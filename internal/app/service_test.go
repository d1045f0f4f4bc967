package app_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/platterhq/platter/internal/adapters/source"
	"github.com/platterhq/platter/internal/app"
	"github.com/platterhq/platter/internal/domain/model"
	"github.com/platterhq/platter/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// scriptedSource serves fixed collections in sequence.
type scriptedSource struct {
	collections [][]model.Recipe
	calls       int
}

func (s *scriptedSource) Fetch(ctx context.Context) ([]model.Recipe, error) {
	if s.calls >= len(s.collections) {
		return nil, errors.New("script exhausted")
	}
	recipes := s.collections[s.calls]
	s.calls++
	return recipes, nil
}

func (s *scriptedSource) Kind() string { return "scripted" }

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service over the mock source", t, func() {
		svc := app.New(app.WithSource(source.NewMockSource(source.WithMockCount(12))))

		Convey("When started", func() {
			err := svc.Start(ctx)
			defer svc.Stop()

			Convey("Then the collection is loaded", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["recipes"], ShouldEqual, 12)
				So(stats["source"], ShouldEqual, "mock")
				So(stats["fallbackUsed"], ShouldBeTrue)
			})

			Convey("And starting again is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})
		})
	})

	Convey("Given a service over a dead source", t, func() {
		svc := app.New(app.WithSource(&scriptedSource{}))

		Convey("When started", func() {
			err := svc.Start(ctx)

			Convey("Then startup fails rather than serving nothing", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestServiceViews(t *testing.T) {
	ctx := context.Background()

	recipes := []model.Recipe{
		{ID: 1, Title: "Pizza", ReadyInMinutes: 20, HealthScore: 80, Vegetarian: true},
		{ID: 2, Title: "Tacos", ReadyInMinutes: 45, HealthScore: 50, Vegan: true},
	}

	Convey("Given a started service with a known collection", t, func() {
		svc := app.New(app.WithSource(&scriptedSource{collections: [][]model.Recipe{recipes}}))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When computing views with open criteria", func() {
			views := svc.Views(ctx, model.Criteria{Query: "", Diet: model.DietAll})

			Convey("Then the full pipeline output matches", func() {
				So(views.Filtered, ShouldHaveLength, 2)
				So(views.Summary.TotalRecipes, ShouldEqual, 2)
				So(views.Summary.AvgTime, ShouldEqual, 33)
				So(views.Summary.AvgHealth, ShouldEqual, 65)
				So(views.Buckets, ShouldHaveLength, 4)
				So(views.Distribution, ShouldHaveLength, 2)
			})
		})

		Convey("When computing views with a diet filter", func() {
			views := svc.Views(ctx, model.Criteria{Diet: model.DietVegan})

			Convey("Then only the vegan recipe survives", func() {
				So(views.Filtered, ShouldHaveLength, 1)
				So(views.Filtered[0].Title, ShouldEqual, "Tacos")
			})
		})
	})
}

func TestServiceRefresh(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service whose source yields different collections", t, func() {
		src := &scriptedSource{collections: [][]model.Recipe{
			{{ID: 1, Title: "Pizza"}},
			{{ID: 1, Title: "Pizza"}, {ID: 2, Title: "Tacos"}},
		}}
		svc := app.New(app.WithSource(src))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When refreshing", func() {
			err := svc.Refresh(ctx)

			Convey("Then the new collection replaces the old one", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats()
				So(stats["recipes"], ShouldEqual, 2)
				So(stats["generation"], ShouldEqual, int64(2))
			})
		})

		Convey("When the source dies on refresh", func() {
			So(svc.Refresh(ctx), ShouldBeNil) // consumes the second collection
			err := svc.Refresh(ctx)

			Convey("Then the error surfaces and the old collection stays", func() {
				So(err, ShouldNotBeNil)
				So(svc.GetStats()["recipes"], ShouldEqual, 2)
			})
		})
	})
}
