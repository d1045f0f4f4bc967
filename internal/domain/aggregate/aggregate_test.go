package aggregate_test

import (
	"testing"

	"github.com/platterhq/platter/internal/domain/aggregate"
	"github.com/platterhq/platter/internal/domain/model"
	"github.com/platterhq/platter/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSummarize(t *testing.T) {
	Convey("Given a filtered recipe set", t, func() {
		Convey("When the set is empty", func() {
			got := aggregate.Summarize(nil)

			Convey("Then every field is zero", func() {
				So(got, ShouldResemble, types.Summary{TotalRecipes: 0, AvgTime: 0, AvgHealth: 0})
			})
		})

		Convey("When the set has recipes", func() {
			filtered := []model.Recipe{
				{Title: "Pizza", ReadyInMinutes: 20, HealthScore: 80},
				{Title: "Tacos", ReadyInMinutes: 45, HealthScore: 50},
			}
			got := aggregate.Summarize(filtered)

			Convey("Then the total matches the set size", func() {
				So(got.TotalRecipes, ShouldEqual, 2)
			})

			Convey("Then averages round half away from zero", func() {
				// mean time 32.5 -> 33, mean health 65 -> 65
				So(got.AvgTime, ShouldEqual, 33)
				So(got.AvgHealth, ShouldEqual, 65)
			})
		})

		Convey("When health scores are absent (zero)", func() {
			filtered := []model.Recipe{
				{Title: "A", ReadyInMinutes: 10},
				{Title: "B", ReadyInMinutes: 10, HealthScore: 30},
			}
			got := aggregate.Summarize(filtered)

			Convey("Then missing scores count as zero in the mean", func() {
				So(got.AvgHealth, ShouldEqual, 15)
			})
		})
	})
}

func TestBucketize(t *testing.T) {
	Convey("Given a filtered recipe set", t, func() {
		Convey("When the set is empty", func() {
			got := aggregate.Bucketize(nil)

			Convey("Then all four buckets are present with zero counts", func() {
				So(got, ShouldResemble, []types.Bucket{
					{Label: "0-30 min", Count: 0},
					{Label: "31-60 min", Count: 0},
					{Label: "61-90 min", Count: 0},
					{Label: "90+ min", Count: 0},
				})
			})
		})

		Convey("When recipes span every range", func() {
			filtered := []model.Recipe{
				{ReadyInMinutes: 0},
				{ReadyInMinutes: 30},
				{ReadyInMinutes: 31},
				{ReadyInMinutes: 60},
				{ReadyInMinutes: 61},
				{ReadyInMinutes: 90},
				{ReadyInMinutes: 91},
				{ReadyInMinutes: 500},
			}
			got := aggregate.Bucketize(filtered)

			Convey("Then boundaries are inclusive and the last range is open", func() {
				So(got[0].Count, ShouldEqual, 2)
				So(got[1].Count, ShouldEqual, 2)
				So(got[2].Count, ShouldEqual, 2)
				So(got[3].Count, ShouldEqual, 2)
			})

			Convey("Then counts sum to the set size for nonnegative times", func() {
				total := 0
				for _, b := range got {
					total += b.Count
				}
				So(total, ShouldEqual, len(filtered))
			})
		})

		Convey("When a recipe has a negative cooking time", func() {
			got := aggregate.Bucketize([]model.Recipe{{ReadyInMinutes: -5}})

			Convey("Then it lands in no bucket at all", func() {
				total := 0
				for _, b := range got {
					total += b.Count
				}
				So(total, ShouldEqual, 0)
			})
		})
	})
}

func TestDistribute(t *testing.T) {
	Convey("Given a filtered recipe set", t, func() {
		Convey("When the set is empty", func() {
			Convey("Then the distribution is empty", func() {
				So(aggregate.Distribute(nil), ShouldBeEmpty)
			})
		})

		Convey("When recipes carry single tags", func() {
			filtered := []model.Recipe{
				{Title: "Pizza", Vegetarian: true},
				{Title: "Tacos", Vegan: true},
			}
			got := aggregate.Distribute(filtered)

			Convey("Then only non-zero categories appear, in fixed order", func() {
				So(got, ShouldResemble, []types.Slice{
					{Label: "Vegetarian", Count: 1, Color: "#22c55e"},
					{Label: "Vegan", Count: 1, Color: "#a855f7"},
				})
			})
		})

		Convey("When a recipe carries several tags", func() {
			filtered := []model.Recipe{
				{Title: "Salad", Vegetarian: true, Vegan: true},
			}
			got := aggregate.Distribute(filtered)

			Convey("Then it is counted in every matching category", func() {
				So(got, ShouldResemble, []types.Slice{
					{Label: "Vegetarian", Count: 1, Color: "#22c55e"},
					{Label: "Vegan", Count: 1, Color: "#a855f7"},
				})
			})
		})

		Convey("When recipes carry no diet tags", func() {
			filtered := []model.Recipe{
				{Title: "Steak"},
				{Title: "Burger", DairyFree: true},
			}
			got := aggregate.Distribute(filtered)

			Convey("Then they fall into Other", func() {
				So(got, ShouldResemble, []types.Slice{
					{Label: "Other", Count: 2, Color: "#ef4444"},
				})
			})
		})

		Convey("When every category is populated", func() {
			filtered := []model.Recipe{
				{Vegetarian: true},
				{Vegan: true},
				{GlutenFree: true},
				{},
			}
			got := aggregate.Distribute(filtered)

			Convey("Then all four categories appear in fixed order", func() {
				So(got, ShouldHaveLength, 4)
				So(got[0].Label, ShouldEqual, "Vegetarian")
				So(got[1].Label, ShouldEqual, "Vegan")
				So(got[2].Label, ShouldEqual, "Gluten Free")
				So(got[3].Label, ShouldEqual, "Other")
			})
		})
	})
}

func TestRecompute(t *testing.T) {
	recipes := []model.Recipe{
		{ID: 1, Title: "Pizza", ReadyInMinutes: 20, HealthScore: 80, Vegetarian: true},
		{ID: 2, Title: "Tacos", ReadyInMinutes: 45, HealthScore: 50, Vegan: true},
	}

	Convey("Given the two-recipe collection", t, func() {
		Convey("When criteria are empty", func() {
			views := aggregate.Recompute(recipes, model.Criteria{Query: "", Diet: model.DietAll})

			Convey("Then the filtered set keeps both recipes", func() {
				So(views.Filtered, ShouldHaveLength, 2)
			})

			Convey("Then the summary matches", func() {
				So(views.Summary, ShouldResemble, types.Summary{TotalRecipes: 2, AvgTime: 33, AvgHealth: 65})
			})

			Convey("Then the histogram has one recipe in each of the first two buckets", func() {
				So(views.Buckets, ShouldResemble, []types.Bucket{
					{Label: "0-30 min", Count: 1},
					{Label: "31-60 min", Count: 1},
					{Label: "61-90 min", Count: 0},
					{Label: "90+ min", Count: 0},
				})
			})

			Convey("Then the distribution omits Gluten Free and Other", func() {
				So(views.Distribution, ShouldResemble, []types.Slice{
					{Label: "Vegetarian", Count: 1, Color: "#22c55e"},
					{Label: "Vegan", Count: 1, Color: "#a855f7"},
				})
			})
		})

		Convey("When the query matches nothing", func() {
			views := aggregate.Recompute(recipes, model.Criteria{Query: "zz", Diet: model.DietAll})

			Convey("Then every view is empty or zeroed", func() {
				So(views.Filtered, ShouldBeEmpty)
				So(views.Summary, ShouldResemble, types.Summary{})
				So(views.Buckets, ShouldHaveLength, 4)
				for _, b := range views.Buckets {
					So(b.Count, ShouldEqual, 0)
				}
				So(views.Distribution, ShouldBeEmpty)
			})
		})

		Convey("When filtering by vegan", func() {
			views := aggregate.Recompute(recipes, model.Criteria{Query: "", Diet: model.DietVegan})

			Convey("Then only Tacos survives", func() {
				So(views.Filtered, ShouldHaveLength, 1)
				So(views.Filtered[0].Title, ShouldEqual, "Tacos")
			})

			Convey("Then the distribution carries only Vegan", func() {
				So(views.Distribution, ShouldResemble, []types.Slice{
					{Label: "Vegan", Count: 1, Color: "#a855f7"},
				})
			})
		})

		Convey("When recomputing twice with identical inputs", func() {
			a := aggregate.Recompute(recipes, model.Criteria{Query: "ta", Diet: model.DietAll})
			b := aggregate.Recompute(recipes, model.Criteria{Query: "ta", Diet: model.DietAll})

			Convey("Then the results are identical by value", func() {
				So(a, ShouldResemble, b)
			})
		})
	})
}
