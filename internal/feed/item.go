package feed

// Item is a single nearby spot in the feed.
// The tracker treats it as opaque beyond its ID; everything else is
// display data passed through to the card and to event payloads.
type Item struct {
	ID        string
	Name      string
	Category  string
	Summary   string
	URL       string
	Lat       float64
	Lng       float64
	DistanceM float64
	Rating    float64 // 0..5, 0 = unrated
}
