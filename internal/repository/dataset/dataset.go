// Package dataset - встроенный набор форматов адресов, стран, подразделений и зон.
// Данные загружаются из JSON один раз и хранятся в памяти; изменения (администрирование)
// применяются к копии в памяти и не переживают перезапуск.
package dataset

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/pkg/locale"
)

//go:embed data
var embedded embed.FS

const (
	formatsFile      = "address_formats.json"
	countriesFile    = "countries.json"
	zonesFile        = "zones.json"
	subdivisionsGlob = "subdivisions/*.json"
)

type Dataset struct {
	mu           sync.RWMutex
	formats      map[string]*formatRecord
	subdivisions map[string]*domain.Subdivision
	children     map[childKey][]string
	countries    map[string]*domain.Country
	zones        map[string]*domain.Zone
	logger       *zap.Logger
}

type childKey struct {
	country string
	parent  string
}

type formatRecord struct {
	domain.AddressFormat
	Translations map[string]string `json:"translations,omitempty"`
}

type subdivisionRecord struct {
	ID                string                                   `json:"id"`
	ParentID          string                                   `json:"parent_id,omitempty"`
	Code              string                                   `json:"code"`
	Name              string                                   `json:"name"`
	PostalCodePattern string                                   `json:"postal_code_pattern,omitempty"`
	Translations      map[string]domain.SubdivisionTranslation `json:"translations,omitempty"`
}

// New загружает встроенный набор данных
func New(logger *zap.Logger) (*Dataset, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, errors.NewDataSourceError("open embedded dataset", err)
	}
	return Load(sub, logger)
}

// Load загружает набор данных из произвольной файловой системы (каталог с той же структурой)
func Load(fsys fs.FS, logger *zap.Logger) (*Dataset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ds := &Dataset{
		formats:      make(map[string]*formatRecord),
		subdivisions: make(map[string]*domain.Subdivision),
		children:     make(map[childKey][]string),
		countries:    make(map[string]*domain.Country),
		zones:        make(map[string]*domain.Zone),
		logger:       logger,
	}

	if err := ds.loadFormats(fsys); err != nil {
		return nil, err
	}
	if err := ds.loadCountries(fsys); err != nil {
		return nil, err
	}
	if err := ds.loadSubdivisions(fsys); err != nil {
		return nil, err
	}
	if err := ds.loadZones(fsys); err != nil {
		return nil, err
	}

	logger.Info("Address dataset loaded",
		zap.Int("formats", len(ds.formats)),
		zap.Int("countries", len(ds.countries)),
		zap.Int("subdivisions", len(ds.subdivisions)),
		zap.Int("zones", len(ds.zones)),
	)

	return ds, nil
}

func readJSON(fsys fs.FS, name string, v interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.NewDataSourceError("read "+name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.NewDataSourceError("decode "+name, err)
	}
	return nil
}

func (ds *Dataset) loadFormats(fsys fs.FS) error {
	var records []*formatRecord
	if err := readJSON(fsys, formatsFile, &records); err != nil {
		return err
	}
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return errors.NewDataSourceError("validate format "+rec.CountryCode, err)
		}
		rec.Translations = normalizeKeys(rec.Translations)
		ds.formats[rec.CountryCode] = rec
	}
	if _, ok := ds.formats[domain.GenericCountryCode]; !ok {
		return errors.NewDataSourceError("load formats", fmt.Errorf("generic format %s is missing", domain.GenericCountryCode))
	}
	return nil
}

func (ds *Dataset) loadCountries(fsys fs.FS) error {
	var countries []*domain.Country
	if err := readJSON(fsys, countriesFile, &countries); err != nil {
		return err
	}
	for _, c := range countries {
		if !domain.IsCountryCode(c.Code) {
			return errors.NewDataSourceError("load countries", fmt.Errorf("invalid country code %q", c.Code))
		}
		c.Translations = normalizeKeys(c.Translations)
		ds.countries[c.Code] = c
	}
	return nil
}

func (ds *Dataset) loadSubdivisions(fsys fs.FS) error {
	files, err := fs.Glob(fsys, subdivisionsGlob)
	if err != nil {
		return errors.NewDataSourceError("list subdivisions", err)
	}

	for _, file := range files {
		countryCode := strings.TrimSuffix(path.Base(file), ".json")
		var records []subdivisionRecord
		if err := readJSON(fsys, file, &records); err != nil {
			return err
		}
		for _, rec := range records {
			sub := &domain.Subdivision{
				ID:                rec.ID,
				CountryCode:       countryCode,
				ParentID:          rec.ParentID,
				Code:              rec.Code,
				Name:              rec.Name,
				PostalCodePattern: rec.PostalCodePattern,
				Translations:      normalizeSubdivisionKeys(rec.Translations),
			}
			if err := sub.Validate(); err != nil {
				return errors.NewDataSourceError("validate subdivision "+file, err)
			}
			ds.subdivisions[sub.ID] = sub
		}
	}

	for id, sub := range ds.subdivisions {
		if sub.ParentID != "" {
			if _, ok := ds.subdivisions[sub.ParentID]; !ok {
				return errors.NewDataSourceError("load subdivisions", fmt.Errorf("subdivision %s references missing parent %s", id, sub.ParentID))
			}
		}
	}
	ds.rebuildChildren()
	return nil
}

func (ds *Dataset) loadZones(fsys fs.FS) error {
	var zones []*domain.Zone
	if err := readJSON(fsys, zonesFile, &zones); err != nil {
		return err
	}
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return errors.NewDataSourceError("validate zone "+z.ID, err)
		}
		ds.zones[z.ID] = z
	}
	return nil
}

// rebuildChildren пересобирает индекс потомков. Вызывается под записывающей блокировкой.
func (ds *Dataset) rebuildChildren() {
	ds.children = make(map[childKey][]string)
	for id, sub := range ds.subdivisions {
		key := childKey{country: sub.CountryCode, parent: sub.ParentID}
		ds.children[key] = append(ds.children[key], id)
	}
	for key := range ds.children {
		sort.Strings(ds.children[key])
	}
}

// depth считает глубину поддерева. Вызывается под блокировкой.
func (ds *Dataset) depth(countryCode, parentID string, level int) int {
	ids := ds.children[childKey{country: countryCode, parent: parentID}]
	if len(ids) == 0 || level >= domain.MaxSubdivisionDepth {
		return 0
	}
	maxChild := 0
	for _, id := range ids {
		if d := ds.depth(countryCode, id, level+1); d > maxChild {
			maxChild = d
		}
	}
	return 1 + maxChild
}

// subdivisionView - копия подразделения с актуальным HasChildren. Вызывается под блокировкой.
func (ds *Dataset) subdivisionView(sub *domain.Subdivision, tag string) *domain.Subdivision {
	view := sub.Localized(tag)
	view.HasChildren = len(ds.children[childKey{country: sub.CountryCode, parent: sub.ID}]) > 0
	return view
}

// descendants возвращает id поддерева (включая корень). Вызывается под блокировкой.
func (ds *Dataset) descendants(sub *domain.Subdivision) []string {
	ids := []string{sub.ID}
	for _, childID := range ds.children[childKey{country: sub.CountryCode, parent: sub.ID}] {
		ids = append(ids, ds.descendants(ds.subdivisions[childID])...)
	}
	return ids
}

func normalizeKeys(values map[string]string) map[string]string {
	if len(values) == 0 {
		return nil
	}
	result := make(map[string]string, len(values))
	for k, v := range values {
		result[locale.Normalize(k)] = v
	}
	return result
}

func normalizeSubdivisionKeys(values map[string]domain.SubdivisionTranslation) map[string]domain.SubdivisionTranslation {
	if len(values) == 0 {
		return nil
	}
	result := make(map[string]domain.SubdivisionTranslation, len(values))
	for k, v := range values {
		result[locale.Normalize(k)] = v
	}
	return result
}
