package scoring

import "testing"

func TestRateImportanceFloor(t *testing.T) {
	if got := RateImportance("", nil); got != 1 {
		t.Errorf("RateImportance(empty) = %d, want floor of 1", got)
	}
	if got := RateImportance("quiet village fair this weekend", nil); got != 1 {
		t.Errorf("RateImportance(benign) = %d, want 1", got)
	}
}

func TestRateImportanceCeiling(t *testing.T) {
	text := "nuclear war pandemic coup doomsday apocalypse existential threat " +
		"terrorism missile crisis typhoon tsunami earthquake flood drought " +
		"wildfire famine refugee outbreak epidemic sanctions protest unrest riot"
	if got := RateImportance(text, nil); got != 5 {
		t.Errorf("RateImportance(loaded) = %d, want ceiling of 5", got)
	}
}

func TestRateImportanceMonotonic(t *testing.T) {
	low := RateImportance("a new port development was announced", nil)
	high := RateImportance("nuclear war pandemic crisis missile coup doomsday existential threat famine", nil)
	if high <= low {
		t.Errorf("loaded text scored %d, benign text %d; want loaded strictly higher", high, low)
	}
}

func TestRateImportanceBonuses(t *testing.T) {
	base := "nuclear war pandemic coup missile crisis typhoon tsunami earthquake"
	plain := RateImportance(base, nil)
	urgent := RateImportance(base+" breaking emergency military conflict", nil)
	if urgent < plain {
		t.Errorf("bonus text scored %d below plain %d", urgent, plain)
	}
}

func TestRateImportanceCountsTags(t *testing.T) {
	content := "an otherwise uneventful announcement"
	without := RateImportance(content, nil)
	with := RateImportance(content, []string{"nuclear", "war", "pandemic", "coup", "crisis", "missile", "doomsday"})
	if with < without {
		t.Errorf("tag-weighted score %d below untagged %d", with, without)
	}
}

func TestRateImportanceRange(t *testing.T) {
	texts := []string{
		"",
		"trade",
		"military exercise near taiwan",
		"nuclear crisis war pandemic",
	}
	for _, text := range texts {
		got := RateImportance(text, nil)
		if got < 1 || got > 5 {
			t.Errorf("RateImportance(%q) = %d, outside [1,5]", text, got)
		}
	}
}

func TestCategorizeCountsKeywordHits(t *testing.T) {
	got := Categorize("The navy conducted a missile exercise off the coast.")

	if len(got) != 1 {
		t.Fatalf("Categorize = %v, want only the Military bucket", got)
	}
	if got["Military"] != 3 {
		t.Errorf("Military hits = %d, want 3 (navy, missile, exercise)", got["Military"])
	}
}

func TestCategorizeOmitsZeroBuckets(t *testing.T) {
	got := Categorize("hello world")
	if len(got) != 0 {
		t.Errorf("Categorize(benign) = %v, want empty map", got)
	}
	for topic, count := range got {
		if count == 0 {
			t.Errorf("zero-valued bucket %s leaked into result", topic)
		}
	}
}

func TestCategorizeMultipleBuckets(t *testing.T) {
	got := Categorize("Naval trade patrols protect economic shipping lanes and port access.")

	if _, ok := got["Military"]; !ok {
		t.Errorf("Categorize = %v, want Military bucket", got)
	}
	if _, ok := got["Business"]; !ok {
		t.Errorf("Categorize = %v, want Business bucket", got)
	}
}

func TestImportanceIndexLowercased(t *testing.T) {
	idx := ImportanceIndex()
	if _, ok := idx["south china sea"]; !ok {
		t.Errorf("index missing lowercase multi-word key")
	}
	if _, ok := idx["us"]; !ok {
		t.Errorf("index missing lowercased actor key")
	}
	for key := range idx {
		if key != "" && key[0] >= 'A' && key[0] <= 'Z' {
			t.Errorf("index key %q not lowercased", key)
		}
	}
}
