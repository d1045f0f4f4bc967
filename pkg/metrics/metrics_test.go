package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		Convey("When creating a manager with defaults", func() {
			m := NewManager(WithRegistry(prometheus.NewRegistry()))

			Convey("Then it is created successfully", func() {
				So(m, ShouldNotBeNil)
				So(m.namespace, ShouldEqual, "platter")
				So(m.subsystem, ShouldEqual, "dashboard")
			})
		})

		Convey("When creating a manager with custom options", func() {
			m := NewManager(
				WithNamespace("custom"),
				WithSubsystem("views"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRegistry(prometheus.NewRegistry()),
			)

			Convey("Then the options apply", func() {
				So(m.namespace, ShouldEqual, "custom")
				So(m.subsystem, ShouldEqual, "views")
				So(m.histogramBuckets, ShouldResemble, []float64{0.1, 0.5, 1.0})
			})
		})

		Convey("When passing empty option values", func() {
			m := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithRegistry(prometheus.NewRegistry()),
			)

			Convey("Then defaults are kept", func() {
				So(m.namespace, ShouldEqual, "platter")
				So(m.subsystem, ShouldEqual, "dashboard")
				So(m.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording through the package helpers", func() {
			Convey("Then none of them panic", func() {
				So(func() {
					RecordSourceFetchLatency(12.5)
					RecordSourceFetchError()
					RecordSourceFallback()
					UpdateSourceRecipes(24)
					RecordSourceInvalidRecord()
					RecordRecomputeDuration(0.3)
					RecordFilteredSetSize(7)
					UpdateCatalogSize(24)
					UpdateCatalogGeneration(3)
					RecordCatalogSwap()
					RecordCatalogSwapDuration(0.8)
					RecordCatalogDuplicate()
					RecordHTTPRequest("summary", "GET", "200")
					RecordHTTPRequestDuration("summary", "GET", "200", 1.2)
					RecordHTTPError("refresh", "POST", "server_error")
					UpdateSystemMemoryUsage(1 << 20)
					UpdateSystemGoroutineCount(8)
				}, ShouldNotPanic)
			})
		})

		Convey("When fetching the registry", func() {
			Convey("Then the custom registry is returned", func() {
				So(GetRegistry(), ShouldNotBeNil)
				So(GetRegistry(), ShouldEqual, customRegistry)
			})
		})
	})
}
