package engine

// Config holds the recognised tunables for a game.
type Config struct {
	FinalHandSize   int  `json:"final_hand_size"`
	AutoDealerRob   bool `json:"auto_dealer_rob"`
	InitialDealSize int  `json:"initial_deal_size"`
	WinningScore    int  `json:"winning_score"`
}

// DefaultConfig returns the standard Finnish Pidro configuration.
func DefaultConfig() Config {
	return Config{
		FinalHandSize:   6,
		AutoDealerRob:   true,
		InitialDealSize: 9,
		WinningScore:    62,
	}
}

func (c Config) normalized() Config {
	if c.FinalHandSize == 0 {
		c.FinalHandSize = 6
	}
	if c.InitialDealSize == 0 {
		c.InitialDealSize = 9
	}
	if c.WinningScore == 0 {
		c.WinningScore = 62
	}
	return c
}
