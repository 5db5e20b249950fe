package response_models

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AboutPage struct {
	Stats  []Stat    `json:"stats"`
	Values []Feature `json:"values"`
}

type HomePage struct {
	Features []Feature     `json:"features"`
	Featured []Destination `json:"featured"`
}

type ContactChannel struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	SubValue string `json:"sub_value"`
}

type ContactPage struct {
	Channels []ContactChannel `json:"channels"`
}

type ContactAccepted struct {
	ID string `json:"id"`
}

type ContactMessage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
