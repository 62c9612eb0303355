package cmd

type Config struct {
	HTTPPort                  string
	TokenSecret               string
	TokenTTL                  string
	RestaurantID              string
	RestaurantName            string
	RestaurantTables          string
	RestaurantBackgroundColor string
	RestaurantTextColor       string
	RestaurantCustomText      string
	EscalationThreshold       string
	EscalationSchedule        string
}
