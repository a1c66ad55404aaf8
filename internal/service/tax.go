package service

import (
	"math"
	"sort"
	"strings"

	"ayz-shop/internal/models"
)

// ResolveTax sums the additive tax owed for a destination. The taxable
// base is the post-discount subtotal plus shipping, floored at zero.
// Inclusive profiles are presumed embedded in listed prices and contribute
// nothing here; that is policy, not an omission.
func (s *Service) ResolveTax(afterDiscount, shipping int, addr models.Address) (int, error) {
	if strings.TrimSpace(addr.Country) == "" {
		return 0, nil
	}

	profiles, err := s.ActiveTaxProfiles()
	if err != nil {
		return 0, err
	}

	matched := make([]models.TaxProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.Matches(addr) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Priority < matched[j].Priority })

	base := afterDiscount + shipping
	if base < 0 {
		base = 0
	}

	total := 0
	for _, p := range matched {
		if p.Rate <= 0 || p.Inclusive {
			continue
		}
		total += int(math.Round(float64(base) * p.Rate / 100))
	}
	return total, nil
}
