package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kalyondo/guardianre-website/internal/export"
	"github.com/kalyondo/guardianre-website/internal/model"
)

var (
	ErrTaxonomyNotFound = errors.New("taxonomy not found")
	ErrTermNotFound     = errors.New("term not found")
)

// TaxonomyService reads the exported taxonomy terms: categories, post
// tags and whatever custom taxonomies the site carried.
type TaxonomyService struct {
	store export.Store
}

func NewTaxonomyService(store export.Store) *TaxonomyService {
	return &TaxonomyService{store: store}
}

// Taxonomies returns the full taxonomy map keyed by taxonomy name.
func (s *TaxonomyService) Taxonomies() (map[string][]model.Term, error) {
	data, err := s.store.ReadFile(export.DocTaxonomies)
	if err != nil {
		return nil, err
	}

	var taxonomies map[string][]model.Term
	if err := json.Unmarshal(data, &taxonomies); err != nil {
		return nil, fmt.Errorf("decode %s: %w", export.DocTaxonomies, err)
	}
	return taxonomies, nil
}

func (s *TaxonomyService) Terms(taxonomy string) ([]model.Term, error) {
	taxonomies, err := s.Taxonomies()
	if err != nil {
		return nil, err
	}

	terms, ok := taxonomies[taxonomy]
	if !ok {
		return nil, ErrTaxonomyNotFound
	}
	return terms, nil
}

func (s *TaxonomyService) Categories() ([]model.Term, error) {
	return s.Terms(model.TaxonomyCategory)
}

func (s *TaxonomyService) Tags() ([]model.Term, error) {
	return s.Terms(model.TaxonomyPostTag)
}

func (s *TaxonomyService) TermBySlug(taxonomy, slug string) (*model.Term, error) {
	terms, err := s.Terms(taxonomy)
	if err != nil {
		return nil, err
	}

	for i := range terms {
		if terms[i].Slug == slug {
			return &terms[i], nil
		}
	}
	return nil, ErrTermNotFound
}
