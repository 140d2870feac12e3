package services

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"transtour/internal/domain/models"
)

func TestParseDestinationFormIndexedFields(t *testing.T) {
	form := url.Values{}
	form.Set("destinations[0].address", "Monas")
	form.Set("destinations[0].lat", "-6.1754")
	form.Set("destinations[0].lng", "106.8272")
	form.Set("destinations[0].departureDate", "2026-10-01")
	form.Set("destinations[0].departureTime", "07:30")
	form.Set("destinations[0].isPickupLocation", "true")
	// index 1 sengaja dilewati; celah indeks harus aman
	form.Set("destinations[2].address", "Ancol")
	form.Set("destinations[2].sequence", "5")
	form.Set("fullName", "Budi") // bukan field destinasi

	got := ParseDestinationForm(form)
	if len(got) != 2 {
		t.Fatalf("jumlah baris salah: got %d want 2", len(got))
	}

	first := got[0]
	if first.Address != "Monas" || first.Coordinate.Lat != -6.1754 || first.Coordinate.Lng != 106.8272 {
		t.Fatalf("baris pertama salah: %+v", first)
	}
	if first.DepartureDate != "2026-10-01" || first.DepartureTime != "07:30" || !first.IsPickupLocation {
		t.Fatalf("tanggal/waktu/pickup baris pertama salah: %+v", first)
	}
	if first.Sequence != 0 {
		t.Fatalf("sequence default harus index form, got %d", first.Sequence)
	}

	if got[1].Address != "Ancol" || got[1].Sequence != 5 {
		t.Fatalf("baris kedua salah: %+v", got[1])
	}
}

func TestParseDestinationFormRejectsMalformedValues(t *testing.T) {
	form := url.Values{}
	form.Set("destinations[0].address", "Monas")
	form.Set("destinations[0].departureDate", "01-10-2026") // format salah
	form.Set("destinations[0].departureTime", "7.30")       // format salah
	form.Set("destinations[0].dayIndex", "-1")              // negatif diabaikan

	got := ParseDestinationForm(form)
	if len(got) != 1 {
		t.Fatalf("jumlah baris salah: %d", len(got))
	}
	if got[0].DepartureDate != "" || got[0].DepartureTime != "" {
		t.Fatalf("nilai tidak valid harus diabaikan: %+v", got[0])
	}
	if got[0].DayIndex != nil {
		t.Fatalf("dayIndex negatif harus diabaikan")
	}
}

func dest(addr, date string, seq int) DestinationInput {
	d := DestinationInput{}
	d.Address = addr
	d.DepartureDate = date
	d.Sequence = seq
	return d
}

func TestNormalizeDropsEmptyAddressAndResequences(t *testing.T) {
	inputs := []DestinationInput{
		dest("Monas", "2026-10-01", 3),
		dest("   ", "2026-10-01", 4),
		dest("Ancol", "2026-10-01", 9),
	}

	got := NormalizeDestinations(inputs, ReconstructConfig{})
	if len(got) != 2 {
		t.Fatalf("baris tanpa alamat harus dibuang, got %d", len(got))
	}
	for i, d := range got {
		if d.Sequence != i {
			t.Fatalf("sequence tidak padat dari nol: %+v", got)
		}
	}
	if !got[0].IsPickupLocation || got[1].IsPickupLocation {
		t.Fatalf("pickup harus tepat satu per hari di sequence terendah: %+v", got)
	}
}

func TestNormalizeSynthesizesDefaultDate(t *testing.T) {
	cfg := ReconstructConfig{
		Now:               time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		DefaultOffsetDays: 5,
	}
	got := NormalizeDestinations([]DestinationInput{dest("Monas", "", 0)}, cfg)
	if len(got) != 1 {
		t.Fatalf("jumlah baris salah: %d", len(got))
	}
	if got[0].DepartureDate != "2026-09-06" {
		t.Fatalf("tanggal default salah: got %s want 2026-09-06", got[0].DepartureDate)
	}
}

func TestNormalizeLegacySequenceStride(t *testing.T) {
	inputs := []DestinationInput{
		dest("Monas", "2026-10-01", 0),
		dest("Gedung Sate", "2026-10-02", 0),
		dest("Ancol", "", 1),     // < 100: hari pertama
		dest("Lembang", "", 101), // >= 100: hari kedua
	}

	got := NormalizeDestinations(inputs, ReconstructConfig{})
	byAddr := map[string]string{}
	for _, d := range got {
		byAddr[d.Address] = d.DepartureDate
	}
	if byAddr["Ancol"] != "2026-10-01" {
		t.Fatalf("sequence < 100 harus ke hari pertama, got %s", byAddr["Ancol"])
	}
	if byAddr["Lembang"] != "2026-10-02" {
		t.Fatalf("sequence >= 100 harus ke hari kedua, got %s", byAddr["Lembang"])
	}
}

func TestNormalizeExplicitDayIndexWins(t *testing.T) {
	day1 := 1
	far := 7

	row := dest("Ancol", "", 1) // stride akan memilih hari pertama
	row.DayIndex = &day1
	clamped := dest("Lembang", "", 2)
	clamped.DayIndex = &far // melebihi jumlah hari: di-clamp ke hari terakhir

	inputs := []DestinationInput{
		dest("Monas", "2026-10-01", 0),
		dest("Gedung Sate", "2026-10-02", 0),
		row,
		clamped,
	}

	got := NormalizeDestinations(inputs, ReconstructConfig{})
	byAddr := map[string]string{}
	for _, d := range got {
		byAddr[d.Address] = d.DepartureDate
	}
	if byAddr["Ancol"] != "2026-10-02" {
		t.Fatalf("dayIndex eksplisit harus menang atas stride, got %s", byAddr["Ancol"])
	}
	if byAddr["Lembang"] != "2026-10-02" {
		t.Fatalf("dayIndex di luar rentang harus di-clamp ke hari terakhir, got %s", byAddr["Lembang"])
	}
}

func TestNormalizeOnePickupPerDay(t *testing.T) {
	inputs := []DestinationInput{
		dest("Lembang", "2026-10-02", 7),
		dest("Monas", "2026-10-01", 2),
		dest("Gedung Sate", "2026-10-02", 3),
		dest("Ancol", "2026-10-01", 5),
		dest("Braga", "2026-10-02", 9),
	}
	// Semua baris mengaku pickup; normalisasi yang menentukan.
	for i := range inputs {
		inputs[i].IsPickupLocation = true
	}

	got := NormalizeDestinations(inputs, ReconstructConfig{})

	pickups := map[string]int{}
	firstSeq := map[string]int{}
	for _, d := range got {
		if _, ok := firstSeq[d.DepartureDate]; !ok {
			firstSeq[d.DepartureDate] = d.Sequence
		}
		if d.IsPickupLocation {
			pickups[d.DepartureDate]++
			if d.Sequence != firstSeq[d.DepartureDate] {
				t.Fatalf("pickup %s bukan sequence terendah hari %s: %+v", d.Address, d.DepartureDate, got)
			}
		}
	}
	for _, date := range []string{"2026-10-01", "2026-10-02"} {
		if pickups[date] != 1 {
			t.Fatalf("hari %s harus punya tepat satu pickup, got %d", date, pickups[date])
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []DestinationInput{
		dest("Gedung Sate", "2026-10-02", 0),
		dest("Monas", "2026-10-01", 1),
		dest("Ancol", "2026-10-01", 0),
	}

	once := NormalizeDestinations(inputs, ReconstructConfig{})

	again := make([]DestinationInput, 0, len(once))
	for _, d := range once {
		again = append(again, DestinationInput{Destination: d})
	}
	twice := NormalizeDestinations(again, ReconstructConfig{})

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalisasi tidak idempoten:\n%+v\n%+v", once, twice)
	}
}

func TestGroupTripsSplitsByDateAscending(t *testing.T) {
	dests := NormalizeDestinations([]DestinationInput{
		dest("Gedung Sate", "2026-10-02", 0),
		dest("Monas", "2026-10-01", 0),
		dest("Ancol", "2026-10-01", 1),
	}, ReconstructConfig{})

	trips := GroupTrips(dests)
	if len(trips) != 2 {
		t.Fatalf("jumlah trip salah: %d", len(trips))
	}
	if trips[0].DepartureDate != "2026-10-01" || trips[1].DepartureDate != "2026-10-02" {
		t.Fatalf("trip tidak urut tanggal: %+v", trips)
	}
	if len(trips[0].Destinations) != 2 || trips[0].Destinations[0].Address != "Monas" {
		t.Fatalf("isi trip hari pertama salah: %+v", trips[0])
	}

	var startTimed models.Trip
	withTime := dest("Monas", "2026-10-01", 0)
	withTime.DepartureTime = "07:30"
	startTimed = GroupTrips(NormalizeDestinations([]DestinationInput{withTime}, ReconstructConfig{}))[0]
	if startTimed.StartTime != "07:30" {
		t.Fatalf("StartTime harus dari pickup, got %q", startTimed.StartTime)
	}
}
