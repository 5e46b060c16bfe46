package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/sellerboard-kpi/internal/civil"
	"github.com/jekabolt/sellerboard-kpi/internal/entity"
)

const maxPoints = 366

type LoginRequest struct {
	Password string `json:"password"`
}

func (l *LoginRequest) Bind(r *http.Request) error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Password, validation.Required),
	)
}

var civilDate = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" || civil.Valid(s) {
		return nil
	}
	return errors.New("must be a date in YYYY-MM-DD form")
})

// kpiQuery holds the query parameters shared by the KPI endpoints.
type kpiQuery struct {
	Account     string
	Start       string
	End         string
	Granularity string
	Points      int
	Limit       int
}

func parseKpiQuery(r *http.Request) (kpiQuery, error) {
	q := r.URL.Query()
	kq := kpiQuery{
		Account:     q.Get("account"),
		Start:       q.Get("start"),
		End:         q.Get("end"),
		Granularity: q.Get("granularity"),
	}
	var err error
	if kq.Points, err = intParam(q.Get("points")); err != nil {
		return kq, validation.Errors{"points": err}
	}
	if kq.Limit, err = intParam(q.Get("limit")); err != nil {
		return kq, validation.Errors{"limit": err}
	}
	return kq, kq.Validate()
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("must be an integer")
	}
	return n, nil
}

func (q kpiQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Start, validation.When(q.End != "", validation.Required), civilDate),
		validation.Field(&q.End, validation.When(q.Start != "", validation.Required), civilDate),
		validation.Field(&q.Granularity, validation.In(
			string(entity.KpiGranularityDaily),
			string(entity.KpiGranularityWeekly),
		)),
		validation.Field(&q.Points, validation.Min(1), validation.Max(maxPoints)),
		validation.Field(&q.Limit, validation.Min(1), validation.Max(100)),
	)
}
