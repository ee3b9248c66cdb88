package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Sandip-364710/daily-tiffin-service/entity"
	"github.com/Sandip-364710/daily-tiffin-service/repository"

	"github.com/shopspring/decimal"
)

const (
	demandHistoryDays  = 30
	demandWindowDays   = 7
	demandDefaultDaily = 5.0
	demandWeekendBoost = 1.2
)

type AnalyticsService struct {
	Repo         *repository.AnalyticsRepository
	TiffinRepo   *repository.TiffinRepository
	ProviderRepo *repository.ProviderRepository
	UserRepo     *repository.UserRepository
}

func NewAnalyticsService(
	repo *repository.AnalyticsRepository,
	tiffinRepo *repository.TiffinRepository,
	providerRepo *repository.ProviderRepository,
	userRepo *repository.UserRepository,
) *AnalyticsService {
	return &AnalyticsService{
		Repo: repo, TiffinRepo: tiffinRepo, ProviderRepo: providerRepo, UserRepo: userRepo,
	}
}

type Recommendation struct {
	Tiffin     entity.Tiffin `json:"tiffin"`
	OrderCount int64         `json:"orderCount,omitempty"`
	AvgRating  float64       `json:"avgRating,omitempty"`
	Similarity float64       `json:"similarity,omitempty"`
}

// Popular ranks visible items by order-line count, ties broken by mean
// item rating. Items never ordered do not appear.
func (s *AnalyticsService) Popular(limit int) ([]Recommendation, error) {
	rows, err := s.Repo.PopularTiffins(limit)
	if err != nil {
		return nil, err
	}
	out := make([]Recommendation, 0, len(rows))
	for _, r := range rows {
		rec := Recommendation{Tiffin: r.Tiffin, OrderCount: r.OrderCount}
		if r.AvgRating.Valid {
			rec.AvgRating = math.Round(r.AvgRating.Float64*100) / 100
		}
		out = append(out, rec)
	}
	return out, nil
}

// tokenize lowercases and splits on non-alphanumeric runs.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
}

func tiffinDocument(t *entity.Tiffin) []string {
	return tokenize(strings.Join([]string{
		t.Name, t.Description, t.Ingredients, t.MealType, t.SpiceLevel,
	}, " "))
}

// tfidfVectors builds one sparse weight vector per document over the
// shared corpus vocabulary.
func tfidfVectors(docs [][]string) []map[string]float64 {
	n := len(docs)
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, w := range doc {
			if !seen[w] {
				seen[w] = true
				df[w]++
			}
		}
	}

	vecs := make([]map[string]float64, n)
	for i, doc := range docs {
		tf := make(map[string]float64)
		for _, w := range doc {
			tf[w]++
		}
		vec := make(map[string]float64, len(tf))
		for w, count := range tf {
			idf := math.Log(float64(1+n)/float64(1+df[w])) + 1
			vec[w] = (count / float64(len(doc))) * idf
		}
		vecs[i] = vec
	}
	return vecs
}

func cosine(a, b map[string]float64) float64 {
	var dot, na, nb float64
	for w, av := range a {
		na += av * av
		if bv, ok := b[w]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		nb += bv * bv
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Similar ranks the rest of the visible catalog by cosine similarity of
// TF-IDF weighted word bags against the target item.
func (s *AnalyticsService) Similar(tiffinID uint, limit int) ([]Recommendation, error) {
	target, err := s.TiffinRepo.GetVisibleByID(tiffinID)
	if err != nil {
		return nil, ErrNotFound
	}
	others, err := s.Repo.VisibleTiffinsExcept(tiffinID)
	if err != nil {
		return nil, err
	}
	if len(others) == 0 {
		return []Recommendation{}, nil
	}

	docs := make([][]string, 0, len(others)+1)
	docs = append(docs, tiffinDocument(target))
	for i := range others {
		docs = append(docs, tiffinDocument(&others[i]))
	}
	vecs := tfidfVectors(docs)

	out := make([]Recommendation, 0, len(others))
	for i := range others {
		sim := cosine(vecs[0], vecs[i+1])
		if sim > 0 {
			out = append(out, Recommendation{Tiffin: others[i], Similarity: math.Round(sim*10000) / 10000})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Similarity > out[j].Similarity })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ForUser recommends what customers with overlapping order history also
// ordered; customers with no history get the popularity ranking.
func (s *AnalyticsService) ForUser(customerID uint, limit int) ([]Recommendation, error) {
	ordered, err := s.Repo.OrderedTiffinIDs(customerID)
	if err != nil {
		return nil, err
	}
	if len(ordered) == 0 {
		return s.Popular(limit)
	}

	peers, err := s.Repo.SimilarCustomers(customerID, ordered, 10)
	if err != nil {
		return nil, err
	}
	tiffins, err := s.Repo.TiffinsOrderedBy(peers, ordered, limit)
	if err != nil {
		return nil, err
	}
	if len(tiffins) == 0 {
		return s.Popular(limit)
	}

	out := make([]Recommendation, 0, len(tiffins))
	for _, t := range tiffins {
		out = append(out, Recommendation{Tiffin: t})
	}
	return out, nil
}

type DayForecast struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Weekday   string  `json:"weekday"`
	Predicted float64 `json:"predicted"`
}

type DemandForecast struct {
	TiffinID  uint          `json:"tiffinId"`
	BaseDaily float64       `json:"baseDaily"`
	Days      []DayForecast `json:"forecast"`
}

// PredictDemand forecasts daily demand for a provider's own item: a
// 7-day trailing moving average over the last 30 days of order lines,
// a flat +20% on weekend days, and a constant 5/day with no history.
func (s *AnalyticsService) PredictDemand(providerUserID, tiffinID uint, days int) (*DemandForecast, error) {
	if days <= 0 {
		days = demandWindowDays
	}
	if days > demandHistoryDays {
		days = demandHistoryDays
	}

	p, err := s.ProviderRepo.GetByUserID(providerUserID)
	if err != nil {
		return nil, ErrForbidden
	}
	t, err := s.TiffinRepo.GetByID(tiffinID)
	if err != nil {
		return nil, ErrNotFound
	}
	if t.ProviderID != p.ID {
		return nil, ErrForbidden
	}

	since := time.Now().AddDate(0, 0, -demandHistoryDays)
	history, err := s.Repo.DailyOrderCounts(tiffinID, since)
	if err != nil {
		return nil, err
	}

	base := demandDefaultDaily
	if len(history) > 0 {
		// trailing moving average, partial windows allowed
		var last float64
		for i := range history {
			lo := i - demandWindowDays + 1
			if lo < 0 {
				lo = 0
			}
			var sum float64
			for j := lo; j <= i; j++ {
				sum += float64(history[j].Count)
			}
			last = sum / float64(i-lo+1)
		}
		base = last
	}

	out := &DemandForecast{
		TiffinID:  tiffinID,
		BaseDaily: math.Round(base*100) / 100,
		Days:      make([]DayForecast, 0, days),
	}
	for i := 1; i <= days; i++ {
		day := time.Now().AddDate(0, 0, i)
		predicted := base
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			predicted *= demandWeekendBoost
		}
		out.Days = append(out.Days, DayForecast{
			Date:      day.Format("2006-01-02"),
			Weekday:   day.Weekday().String(),
			Predicted: math.Round(predicted*100) / 100,
		})
	}
	return out, nil
}

type Segment struct {
	Customers     int     `json:"customers"`
	AvgOrderCount float64 `json:"avgOrderCount"`
	AvgTotalSpent float64 `json:"avgTotalSpent"`
}

// SegmentCustomers buckets customers by lifetime order count with the
// provider: inactive 0, new 1-5, regular 6-10, loyal >10.
func (s *AnalyticsService) SegmentCustomers(providerUserID uint) (map[string]Segment, error) {
	p, err := s.ProviderRepo.GetByUserID(providerUserID)
	if err != nil {
		return nil, ErrForbidden
	}
	stats, err := s.Repo.CustomerStatsForProvider(p.ID)
	if err != nil {
		return nil, err
	}
	totalCustomers, err := s.Repo.CountCustomers()
	if err != nil {
		return nil, err
	}

	type acc struct {
		n      int
		orders int64
		spent  float64
	}
	buckets := map[string]*acc{"inactive": {}, "new": {}, "regular": {}, "loyal": {}}
	for _, st := range stats {
		var key string
		switch {
		case st.OrderCount == 0:
			key = "inactive"
		case st.OrderCount <= 5:
			key = "new"
		case st.OrderCount <= 10:
			key = "regular"
		default:
			key = "loyal"
		}
		b := buckets[key]
		b.n++
		b.orders += st.OrderCount
		if st.TotalSpent.Valid {
			b.spent += st.TotalSpent.Float64
		}
	}
	buckets["inactive"].n += int(totalCustomers) - len(stats)

	out := make(map[string]Segment, len(buckets))
	for key, b := range buckets {
		seg := Segment{Customers: b.n}
		if b.n > 0 {
			seg.AvgOrderCount = math.Round(float64(b.orders)/float64(b.n)*100) / 100
			seg.AvgTotalSpent = math.Round(b.spent/float64(b.n)*100) / 100
		}
		out[key] = seg
	}
	return out, nil
}

type PriceSuggestion struct {
	TiffinID     uint            `json:"tiffinId"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	MarketAvg    decimal.Decimal `json:"marketAvg"`
	OptimalPrice decimal.Decimal `json:"optimalPrice"`
}

// OptimalPrice blends the item's own price with the category/city market
// average, nudged by its rating, rounded to the nearest 5 and floored at
// 80% of the current price.
func (s *AnalyticsService) OptimalPrice(providerUserID, tiffinID uint) (*PriceSuggestion, error) {
	p, err := s.ProviderRepo.GetByUserID(providerUserID)
	if err != nil {
		return nil, ErrForbidden
	}
	t, err := s.TiffinRepo.GetByID(tiffinID)
	if err != nil {
		return nil, ErrNotFound
	}
	if t.ProviderID != p.ID {
		return nil, ErrForbidden
	}

	owner, err := s.UserRepo.FindByID(p.UserID)
	if err != nil {
		return nil, err
	}

	base, _ := t.Price.Float64()
	market := base
	if avg, err := s.Repo.MarketAvgPrice(t.CategoryID, owner.City, t.ID); err == nil && avg.Valid {
		market = avg.Float64
	}

	rating, _ := t.Rating.Float64()
	factor := 1.0
	if rating > 0 {
		factor = 1 + (rating-3)*0.05
	}

	optimal := (0.6*base + 0.4*market) * factor
	optimal = math.Round(optimal/5) * 5
	if floor := base * 0.8; optimal < floor {
		optimal = floor
	}

	return &PriceSuggestion{
		TiffinID:     t.ID,
		CurrentPrice: t.Price,
		MarketAvg:    decimal.NewFromFloat(market).Round(2),
		OptimalPrice: decimal.NewFromFloat(optimal).Round(2),
	}, nil
}
