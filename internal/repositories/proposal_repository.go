package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProposalNotFound = errors.New("proposal not found")

type ProposalRepository interface {
	Create(proposal *models.Proposal) error
	FindByID(id string) (*models.Proposal, error)
	FindByJob(jobID string) ([]models.Proposal, error)
	FindByJobAndFreelancer(jobID, freelancerID string) (*models.Proposal, error)
	UpdateStatus(proposalID string, status models.ProposalStatus) error
}

type ProposalRepositoryImpl struct {
	db *gorm.DB
}

func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &ProposalRepositoryImpl{db: db}
}

func (r *ProposalRepositoryImpl) Create(proposal *models.Proposal) error {
	return r.db.Create(proposal).Error
}

func (r *ProposalRepositoryImpl) FindByID(id string) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.First(&proposal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

func (r *ProposalRepositoryImpl) FindByJob(jobID string) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.Where("job_id = ?", jobID).Order("created_at DESC").Find(&proposals).Error
	return proposals, err
}

func (r *ProposalRepositoryImpl) FindByJobAndFreelancer(jobID, freelancerID string) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.Where("job_id = ? AND freelancer_id = ?", jobID, freelancerID).First(&proposal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

func (r *ProposalRepositoryImpl) UpdateStatus(proposalID string, status models.ProposalStatus) error {
	result := r.db.Model(&models.Proposal{}).Where("id = ?", proposalID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProposalNotFound
	}
	return nil
}
