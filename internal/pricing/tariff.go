package pricing

import (
	"log"
	"math"
	"strings"
)

// Tariff is one vehicle-class pricing profile. The profiles below are a
// compatibility contract with the validation gate: the client wizard computes
// against the same numbers, so changing them breaks in-flight orders.
type Tariff struct {
	Code      string
	FixedBase int64
	PerKm     int64
	TaxRate   float64
}

var (
	tariffAngkot        = Tariff{Code: "angkot", FixedBase: 150_000, PerKm: 4_100, TaxRate: 0.20}
	tariffHiaceCommuter = Tariff{Code: "hiace_commuter", FixedBase: 1_000_000, PerKm: 2_500, TaxRate: 0.10}
	tariffHiacePremio   = Tariff{Code: "hiace_premio", FixedBase: 1_150_000, PerKm: 25_000, TaxRate: 0.10}
	tariffElf           = Tariff{Code: "elf", FixedBase: 1_250_000, PerKm: 2_500, TaxRate: 0.10}

	// tariffDefault is a flat per-km rate without base fare or tax.
	tariffDefault = Tariff{Code: "default", PerKm: 6_000}
)

// ResolveTariff maps a vehicle-class name to its tariff profile. Matching is
// case-insensitive substring matching, done once here at lookup time; callers
// hold on to the resolved Tariff instead of re-parsing names per calculation.
func ResolveTariff(className string) Tariff {
	name := strings.ToLower(strings.TrimSpace(className))
	switch {
	case strings.Contains(name, "angkot"):
		return tariffAngkot
	case strings.Contains(name, "hiace") && strings.Contains(name, "commuter"):
		return tariffHiaceCommuter
	case strings.Contains(name, "hiace") && strings.Contains(name, "premio"):
		return tariffHiacePremio
	case strings.Contains(name, "elf"):
		return tariffElf
	default:
		return tariffDefault
	}
}

// BasePrice computes (fixed + perKm×km) × (1+tax) × count in whole Rupiah,
// rounded once at the end. An out-of-bounds distance prices at 0 with a
// logged warning rather than an error; the downstream tolerance check rejects
// the order naturally.
func (t Tariff) BasePrice(distanceKm float64, vehicleCount int) int64 {
	if err := ValidateDistance(distanceKm); err != nil {
		log.Printf("[PRICING] tariff=%s jarak tidak wajar, harga di-nol-kan: %v", t.Code, err)
		return 0
	}
	if vehicleCount < 1 {
		vehicleCount = 1
	}

	perVehicle := float64(t.FixedBase) + float64(t.PerKm)*distanceKm
	total := perVehicle * (1 + t.TaxRate) * float64(vehicleCount)
	return int64(math.Round(total))
}

// TariffBasePrice resolves the class name then prices it. Convenience for
// callers that do not keep a resolved Tariff around.
func TariffBasePrice(className string, distanceKm float64, vehicleCount int) int64 {
	return ResolveTariff(className).BasePrice(distanceKm, vehicleCount)
}
