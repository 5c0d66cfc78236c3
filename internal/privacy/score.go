// Package privacy computes the toy risk score behind the privacy-settings
// simulator: a weighted sum over the toggles a kid can flip, mapped to a
// 0-100 score and a traffic-light band.
package privacy

type Setting string

const (
	PublicProfile    Setting = "public_profile"
	ShareLocation    Setting = "share_location"
	ShareFullName    Setting = "share_full_name"
	AcceptStrangers  Setting = "accept_strangers"
	ReusePassword    Setting = "reuse_password"
	PostSchoolPhotos Setting = "post_school_photos"
	TwoFactor        Setting = "two_factor"
	PrivateAccount   Setting = "private_account"
)

// Risky toggles add, protective toggles subtract.
var weights = map[Setting]int{
	PublicProfile:    20,
	ShareLocation:    25,
	ShareFullName:    15,
	AcceptStrangers:  20,
	ReusePassword:    15,
	PostSchoolPhotos: 15,
	TwoFactor:        -15,
	PrivateAccount:   -20,
}

const (
	BandLow    = "low"
	BandMedium = "medium"
	BandHigh   = "high"
)

// Score sums the weights of enabled toggles, clamped to 0-100. Unknown
// setting names contribute nothing.
func Score(enabled map[Setting]bool) (int, string) {
	total := 0
	for setting, on := range enabled {
		if !on {
			continue
		}
		total += weights[setting]
	}
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}
	return total, bandFor(total)
}

func bandFor(score int) string {
	switch {
	case score <= 33:
		return BandLow
	case score <= 66:
		return BandMedium
	default:
		return BandHigh
	}
}
