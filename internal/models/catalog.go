package models

import (
	"errors"
	"time"
)

// ErrRewardNotFound возвращается, если награды нет в каталоге
var ErrRewardNotFound = errors.New("reward not found")

// Reward - ваучер, который можно получить за баллы
type Reward struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Cost    int    `json:"cost"`
	LogoURL string `json:"logo_url"`
}

// DefaultRewards возвращает каталог наград
func DefaultRewards() []Reward {
	return []Reward{
		{ID: "touchngo_rm5", Name: "Touch 'n Go eWallet Voucher (RM5)", Cost: 100, LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/f/fb/Touch_%27n_Go_eWallet_logo.svg/768px-Touch_%27n_Go_eWallet_logo.svg.png"},
		{ID: "shopee_rm10", Name: "Shopee Voucher (RM10)", Cost: 200, LogoURL: "https://1000logos.net/wp-content/uploads/2021/02/Shopee-logo.png"},
		{ID: "foodpanda_rm8", Name: "Foodpanda Voucher (RM8)", Cost: 150, LogoURL: "https://upload.wikimedia.org/wikipedia/commons/c/cb/Foodpanda_logo_since_2017.jpeg"},
		{ID: "shell_fuel_rm15", Name: "Shell Fuel Voucher (RM15)", Cost: 300, LogoURL: "https://images.seeklogo.com/logo-png/18/1/shell-logo-png_seeklogo-184167.png"},
		{ID: "tealive_voucher", Name: "Tealive Voucher", Cost: 75, LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/c/ca/Tealive_logo.svg/1200px-Tealive_logo.svg.png"},
		{ID: "mcd_voucher", Name: "McDonald's Voucher", Cost: 120, LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/3/36/McDonald%27s_Golden_Arches.svg/1200px-McDonald%27s_Golden_Arches.svg.png"},
	}
}

// DefaultBins возвращает демонстрационные контейнеры кампуса Universiti Malaya.
// Статус вычисляется из заполненности.
func DefaultBins(now time.Time) []*Bin {
	seed := []struct {
		id       string
		location string
		category BinCategory
		fill     int
		lat, lon float64
	}{
		{"bin-UM-001", "UM Main Campus (Admin Building)", BinGeneral, 30, 3.1190, 101.6534},
		{"bin-UM-002", "UM Medical Centre Entrance", BinRecycling, 85, 3.1137182, 101.6529117},
		{"bin-UM-003", "Faculty of Dentistry", BinCompost, 60, 3.111625, 101.652962},
		{"bin-UM-004", "UM Central Library", BinGeneral, 70, 3.118509, 101.652758},
		{"bin-UM-005", "Faculty of Computer Science & IT", BinRecycling, 20, 3.1170, 101.6520},
		{"bin-UM-006", "Perdanasiswa Complex", BinGeneral, 95, 3.1197, 101.6526},
		{"bin-UM-007", "UM Sports Centre", BinCompost, 45, 3.1154, 101.6508},
		{"bin-UM-008", "Faculty of Engineering", BinRecycling, 55, 3.1186, 101.6553},
		{"bin-UM-009", "Faculty of Law", BinGeneral, 75, 3.1204, 101.6552},
	}

	bins := make([]*Bin, 0, len(seed))
	for _, s := range seed {
		bin := &Bin{
			ID:         s.id,
			Location:   s.location,
			Category:   s.category,
			Coordinate: Coordinate{Latitude: s.lat, Longitude: s.lon},
		}
		bin.setFill(s.fill, now)
		bins = append(bins, bin)
	}
	return bins
}
