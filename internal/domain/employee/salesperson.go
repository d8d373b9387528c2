package employee

import (
	"fmt"

	"github.com/jsamuelsen11/workforce/internal/domain"
)

// Salesperson is paid base salary plus commission on sales volume.
type Salesperson struct {
	base
	commissionRate float64
	salesVolume    float64
}

// NewSalesperson validates every field and returns a Salesperson.
func NewSalesperson(id int64, name, department string, baseSalary, commissionRate, salesVolume float64) (*Salesperson, error) {
	b, baseErr := newBase(id, name, department, baseSalary)
	err := domain.Collect(
		baseErr,
		domain.ValidateNonNegativeAmount("commission_rate", commissionRate),
		domain.ValidateNonNegativeAmount("sales_volume", salesVolume),
	)
	if err != nil {
		return nil, err
	}
	return &Salesperson{base: b, commissionRate: commissionRate, salesVolume: salesVolume}, nil
}

func (s *Salesperson) Kind() Kind { return KindSalesperson }

// CommissionRate returns the fraction of sales paid as commission.
func (s *Salesperson) CommissionRate() float64 { return s.commissionRate }

// SalesVolume returns the sales amount commission is paid on.
func (s *Salesperson) SalesVolume() float64 { return s.salesVolume }

func (s *Salesperson) SetCommissionRate(rate float64) error {
	if err := domain.ValidateNonNegativeAmount("commission_rate", rate); err != nil {
		return err
	}
	s.commissionRate = rate
	return nil
}

func (s *Salesperson) SetSalesVolume(volume float64) error {
	if err := domain.ValidateNonNegativeAmount("sales_volume", volume); err != nil {
		return err
	}
	s.salesVolume = volume
	return nil
}

// CalculateCommission returns sales volume times commission rate.
func (s *Salesperson) CalculateCommission() float64 {
	return s.salesVolume * s.commissionRate
}

func (s *Salesperson) CalculateSalary() float64 {
	return s.baseSalary + s.CalculateCommission()
}

func (s *Salesperson) Info() string {
	return fmt.Sprintf("Salesperson: %s\nID: %d\nDepartment: %s\nBase salary: %.2f\nSales volume: %.2f\nCommission (%g%%): %.2f\nTotal: %.2f",
		s.name, s.id, s.department, s.baseSalary, s.salesVolume, s.commissionRate*100, s.CalculateCommission(), s.CalculateSalary())
}

func (s *Salesperson) Record() Record {
	r := s.record(KindSalesperson)
	r[FieldCommissionRate] = s.commissionRate
	r[FieldSalesVolume] = s.salesVolume
	return r
}

func (s *Salesperson) String() string { return s.describe(KindSalesperson) }
