// internal/domain/coupon/service.go
package coupon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Service serves coupon lookups over the in-memory coupon set
type Service struct {
	byCode map[string]*Coupon
}

// NewService loads coupons from the seed data file
func NewService(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coupon data: %w", err)
	}

	var coupons []Coupon
	if err := json.Unmarshal(data, &coupons); err != nil {
		return nil, fmt.Errorf("failed to parse coupon data: %w", err)
	}

	return NewServiceFromCoupons(coupons), nil
}

// NewServiceFromCoupons builds a lookup from records already in memory
func NewServiceFromCoupons(coupons []Coupon) *Service {
	s := &Service{byCode: make(map[string]*Coupon, len(coupons))}
	for i := range coupons {
		c := coupons[i]
		c.Code = strings.ToUpper(c.Code)
		s.byCode[c.Code] = &c
	}
	return s
}

// GetCoupon resolves a code, case-insensitively
func (s *Service) GetCoupon(code string) (*Coupon, bool) {
	c, ok := s.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}
