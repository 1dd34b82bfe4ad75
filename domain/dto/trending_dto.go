package dto

// TrendingQuery holds the bounded parameters of one videos.list call. It is
// immutable once built; its exact field tuple is also the cache key.
type TrendingQuery struct {
	Part       string `url:"part"`
	Chart      string `url:"chart"`
	RegionCode string `url:"regionCode"`
	MaxResults int    `url:"maxResults"`
	Key        string `url:"key"`
}

// TrendingVideo mirrors one item of the videos.list response. Only the fields
// the dashboard renders are decoded.
type TrendingVideo struct {
	ID         string     `json:"id"`
	Snippet    Snippet    `json:"snippet"`
	Statistics Statistics `json:"statistics"`
}

type Snippet struct {
	Title        string     `json:"title"`
	ChannelTitle string     `json:"channelTitle"`
	Thumbnails   Thumbnails `json:"thumbnails"`
}

type Thumbnails struct {
	Medium Thumbnail `json:"medium"`
	High   Thumbnail `json:"high"`
}

type Thumbnail struct {
	URL string `json:"url"`
}

type Statistics struct {
	ViewCount string `json:"viewCount"`
}

// Res is the envelope for JSON API responses.
type Res struct {
	ResponseCode    string      `json:"response_code"`
	ResponseMessage string      `json:"response_message"`
	Data            interface{} `json:"data,omitempty"`
}
