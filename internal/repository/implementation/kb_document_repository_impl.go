package implementation

import (
	"context"
	"errors"

	"helpdesk-assistant-be/internal/entity"
	"helpdesk-assistant-be/internal/mapper"
	"helpdesk-assistant-be/internal/model"
	"helpdesk-assistant-be/internal/repository/contract"
	"helpdesk-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KbDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KbDocumentMapper
}

func NewKbDocumentRepository(db *gorm.DB) contract.KbDocumentRepository {
	return &KbDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewKbDocumentMapper(),
	}
}

func (r *KbDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KbDocumentRepositoryImpl) Create(ctx context.Context, document *entity.KbDocument) error {
	m := r.mapper.ToModel(document)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*document = *r.mapper.ToEntity(m)
	return nil
}

func (r *KbDocumentRepositoryImpl) Update(ctx context.Context, document *entity.KbDocument) error {
	m := r.mapper.ToModel(document)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*document = *r.mapper.ToEntity(m)
	return nil
}

func (r *KbDocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KbDocument, error) {
	var m model.KbDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *KbDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KbDocument, error) {
	var models []*model.KbDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.KbDocument, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *KbDocumentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.KbDocument{}, id).Error
}
