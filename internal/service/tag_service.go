package service

import (
	"context"
	"strings"

	"Founder_Circle/internal/model"
	"Founder_Circle/internal/pkg"
	"Founder_Circle/internal/repository/mysql"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TagService struct {
	repo *mysql.TagRepository
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{repo: mysql.NewTagRepository(db)}
}

func (s *TagService) List(ctx context.Context) ([]model.Tag, error) {
	return s.repo.List(ctx)
}

func (s *TagService) Create(ctx context.Context, name, description string) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	tag := &model.Tag{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
	}
	if err := s.repo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// SeedIfEmpty 首次启动时灌入默认标签
func (s *TagService) SeedIfEmpty(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, d := range defaultTags {
		tag := &model.Tag{ID: uuid.New().String(), Name: d.name, Description: d.desc}
		if err := s.repo.Create(ctx, tag); err != nil {
			return err
		}
	}
	pkg.Logger.Info("seeded default tags", zap.Int("count", len(defaultTags)))
	return nil
}

var defaultTags = []struct {
	name string
	desc string
}{
	{"Startups", "Early-stage companies and ventures"},
	{"Founders", "Startup founders and co-founders"},
	{"Engineering", "Software engineering and development"},
	{"Product", "Product management and strategy"},
	{"Design", "UI/UX and product design"},
	{"Marketing", "Growth and marketing strategies"},
	{"Sales", "Sales and business development"},
	{"Finance", "Finance and accounting"},
	{"Legal", "Legal and compliance"},
	{"HR", "Human resources and recruiting"},
	{"AI", "Artificial intelligence and ML"},
	{"Fintech", "Financial technology"},
	{"SaaS", "Software as a Service"},
	{"E-commerce", "Online retail and commerce"},
	{"Healthcare", "Health technology"},
	{"EdTech", "Education technology"},
	{"Gaming", "Video games and gaming"},
	{"Social Media", "Social networking platforms"},
	{"Productivity", "Work and productivity tools"},
	{"Developer Tools", "Software development tools"},
	{"Crypto", "Blockchain and cryptocurrency"},
	{"Mobile", "Mobile app development"},
	{"Analytics", "Data analytics and insights"},
	{"Security", "Cybersecurity solutions"},
	{"IoT", "Internet of Things"},
	{"AR/VR", "Augmented and virtual reality"},
	{"Climate", "Climate and sustainability"},
	{"Hardware", "Physical products and devices"},
	{"B2B", "Business to business"},
	{"B2C", "Business to consumer"},
	{"Marketplace", "Marketplace platforms"},
	{"API", "API products and services"},
	{"Open Source", "Open source projects"},
	{"Remote Work", "Remote and distributed teams"},
	{"Enterprise", "Enterprise solutions"},
	{"Investor", "VCs and angel investors"},
	{"Data Science", "Data science and analysis"},
	{"DevOps", "DevOps and infrastructure"},
	{"Product Manager", "Product management"},
	{"Designer", "Product and UX designers"},
	{"Engineer", "Software engineers"},
	{"Marketer", "Growth and marketing pros"},
	{"Agritech", "Agriculture technology"},
	{"Proptech", "Property technology"},
	{"Insurtech", "Insurance technology"},
	{"Logistics", "Supply chain and logistics"},
	{"Food Tech", "Food and beverage tech"},
	{"Travel", "Travel and hospitality"},
	{"Media", "Media and entertainment"},
	{"D2C", "Direct to consumer brands"},
	{"No-code", "No-code and low-code tools"},
	{"Web3", "Decentralized web"},
	{"NFT", "Non-fungible tokens"},
	{"Venture Capital", "VC and fundraising"},
	{"Angel Investing", "Angel investments"},
	{"Bootstrapped", "Self-funded startups"},
	{"YC", "Y Combinator alumni"},
	{"India Startups", "Indian startup ecosystem"},
	{"Memes", "Fun memes and humor"},
}
