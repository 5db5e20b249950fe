package response_models

type Review struct {
	ID            string   `json:"id"`
	DestinationID string   `json:"destination_id"`
	Author        string   `json:"author"`
	Rating        int      `json:"rating"`
	Title         string   `json:"title"`
	Comment       string   `json:"comment"`
	Images        []string `json:"images"`
	Helpful       int      `json:"helpful"`
	Verified      bool     `json:"verified"`
	CreatedAt     string   `json:"created_at"`
}
