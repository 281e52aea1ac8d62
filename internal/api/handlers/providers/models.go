package providers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/pkg/ptr"
)

// filterFromQuery разбирает параметры каталога. Некорректные числа
// отклоняются, пустые параметры пропускаются.
func filterFromQuery(q url.Values) (domain.ProviderFilter, error) {
	f := domain.ProviderFilter{
		Size:     domain.DefaultPageSize,
		Search:   strings.TrimSpace(q.Get("search")),
		Category: strings.ToUpper(strings.TrimSpace(q.Get("categoria"))),
		OrderBy:  strings.TrimSpace(q.Get("orderBy")),
	}

	var err error
	if f.Page, err = intParam(q, "page", 0); err != nil {
		return f, err
	}
	if f.Size, err = intParam(q, "size", domain.DefaultPageSize); err != nil {
		return f, err
	}
	if f.MinRating, err = floatParam(q, "avaliacaoMin"); err != nil {
		return f, err
	}
	if f.Latitude, err = floatParam(q, "latitude"); err != nil {
		return f, err
	}
	if f.Longitude, err = floatParam(q, "longitude"); err != nil {
		return f, err
	}
	return f, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func floatParam(q url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return ptr.Ptr(v), nil
}
