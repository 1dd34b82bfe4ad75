package model

// VideoItem is the display form of one trending entry, already ordered and
// formatted for rendering. ThumbnailURL and WatchURL may be empty; the
// renderer substitutes a placeholder / plain text in that case.
type VideoItem struct {
	Index        int    `json:"index"`
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Views        string `json:"views"`
	WatchURL     string `json:"watch_url,omitempty"`
}
