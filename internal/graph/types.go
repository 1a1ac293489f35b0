package graph

// Page is an entry of /me/accounts. Only pages linked to an Instagram
// professional account carry a non-empty InstagramBusinessAccount.ID.
type Page struct {
	ID                       string `facebook:"id"`
	Name                     string `facebook:"name"`
	AccessToken              string `facebook:"access_token"`
	InstagramBusinessAccount struct {
		ID string `facebook:"id"`
	} `facebook:"instagram_business_account"`
}

func (p Page) BusinessAccountID() string {
	return p.InstagramBusinessAccount.ID
}

type BusinessAccount struct {
	ID                string `facebook:"id"`
	Username          string `facebook:"username"`
	ProfilePictureURL string `facebook:"profile_picture_url"`
}

type Media struct {
	ID string `facebook:"id"`
}

type Author struct {
	ID       string `facebook:"id"`
	Username string `facebook:"username"`
}

// Comment is a raw comment as delivered by the Graph API or a webhook event.
// MediaID and ParentID are filled by the caller from the surrounding context.
type Comment struct {
	ID        string `facebook:"id"`
	Text      string `facebook:"text"`
	Username  string `facebook:"username"`
	LikeCount int    `facebook:"like_count"`
	Timestamp string `facebook:"timestamp"`
	From      Author `facebook:"from"`
	MediaID   string `facebook:"media_id"`
	ParentID  string `facebook:"parent_id"`
}

// AuthorUsername prefers the nested from object over the top-level field.
func (c Comment) AuthorUsername() string {
	if c.From.Username != "" {
		return c.From.Username
	}
	return c.Username
}
