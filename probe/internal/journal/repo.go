package journal

import "gorm.io/gorm"

type Repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) *Repository { return &Repository{db: db} }

func (r *Repository) Create(p *Probe) error { return r.db.Create(p).Error }

// Latest returns up to limit probes, newest first.
func (r *Repository) Latest(limit int) ([]Probe, error) {
	if limit <= 0 {
		limit = 1
	}
	var probes []Probe
	err := r.db.Order("id DESC").Limit(limit).Find(&probes).Error
	return probes, err
}

// Close releases the underlying connection pool.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
