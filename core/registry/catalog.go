package registry

import (
	"sync"

	"github.com/siherrmann/vnextract/model"
)

// Categories of the built-in catalog
const (
	CategoryPersonal = "PERSONAL"
	CategoryFinance  = "FINANCE"
	CategoryLocation = "LOCATION"
	CategoryTime     = "TIME"
	CategoryVehicle  = "VEHICLE"
	CategoryTech     = "TECH"
	CategoryCommerce = "COMMERCE"
)

// DefaultCatalog returns the built-in Vietnamese entity catalog
func DefaultCatalog() []CategoryDefinition {
	return []CategoryDefinition{
		{
			Name: CategoryPersonal,
			Entities: []model.EntityTypeDefinition{
				{
					Label:    "PHONE",
					Patterns: []string{`0\d{9}`, `84\d{9,10}`, `\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`},
					Triggers: []string{"sđt", "điện thoại", "số điện thoại", "đt"},
				},
				{
					Label:    "EMAIL",
					Patterns: []string{`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`},
					Triggers: []string{"email", "thư điện tử", "gmail"},
				},
				{
					Label:    "ID_CARD",
					Patterns: []string{`\b\d{9}\b`, `\b\d{12}\b`},
					Triggers: []string{"cccd", "căn cước", "cmnd"},
				},
				{
					Label:    "SOCIAL_INSURANCE",
					Patterns: []string{`\b\d{10}\b`, `\b\d{13}\b`},
					Triggers: []string{"bhxh", "bảo hiểm xã hội"},
				},
				{
					Label:    "HEALTH_INSURANCE",
					Patterns: []string{`\b[A-Z]{2}\d{13}\b`},
					Triggers: []string{"bảo hiểm y tế", "bhy"},
				},
			},
		},
		{
			Name: CategoryFinance,
			Entities: []model.EntityTypeDefinition{
				{
					Label:    "BANK_ACCOUNT",
					Patterns: []string{`\b\d{9,14}\b`, `\b\d{3} \d{3} \d{3}\b`},
					Triggers: []string{"stk", "số tài khoản", "tài khoản ngân hàng"},
				},
				{
					Label:    "BANK_CARD",
					Patterns: []string{`\b\d{4} \d{4} \d{4} \d{4}\b`, `\b\d{16}\b`},
					Triggers: []string{"số thẻ", "thẻ atm", "thẻ tín dụng"},
				},
				{
					Label:    "MONEY",
					Patterns: []string{`\b\d{1,3}(?:\.\d{3})*(?:,\d+)?\s*(?:đ|vnđ|vnd)\b`},
					Triggers: []string{"số tiền", "tiền", "giá", "thành tiền"},
				},
				{
					Label:    "TAX_CODE",
					Patterns: []string{`\b\d{10}\b`, `\b\d{13}\b`},
					Triggers: []string{"mã số thuế", "mst"},
				},
			},
		},
		{
			Name: CategoryLocation,
			Entities: []model.EntityTypeDefinition{
				{
					Label:    "ADDRESS",
					Patterns: []string{`\b\d{1,3}[/-]?\d*\s*[a-zA-ZÀ-ỹ\s]+`},
					Triggers: []string{"địa chỉ", "số nhà", "đường", "phố"},
				},
				{
					Label:    "POSTAL_CODE",
					Patterns: []string{`\b\d{5,6}\b`},
					Triggers: []string{"mã bưu điện", "postal code", "zip code"},
				},
			},
		},
		{
			Name: CategoryTime,
			Entities: []model.EntityTypeDefinition{
				{
					Label:    "DATE",
					Patterns: []string{`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`, `\b\d{2}/\d{2}/\d{4}\b`},
					Triggers: []string{"ngày", "date", "ngày sinh", "ngày cấp"},
				},
				{
					Label:    "TIME",
					Patterns: []string{`\b\d{1,2}:\d{2}(?::\d{2})?\b`},
					Triggers: []string{"giờ", "time", "thời gian"},
				},
			},
		},
		{
			Name: CategoryVehicle,
			Entities: []model.EntityTypeDefinition{
				{
					Label:    "LICENSE_PLATE",
					Patterns: []string{`\b\d{2}[A-Z]{1,2}-\d{4,5}\b`, `\b\d{2}[A-Z]\d{4,5}\b`},
					Triggers: []string{"biển số", "biển số xe", "số xe"},
				},
				{
					Label:    "VEHICLE_ID",
					Patterns: []string{`\b[A-HJ-NPR-Z0-9]{17}\b`},
					Triggers: []string{"số khung", "số máy", "vin"},
				},
			},
		},
		{
			Name: CategoryTech,
			Entities: []model.EntityTypeDefinition{
				{
					Label:    "URL",
					Patterns: []string{`https?://[^\s]+`, `www\.[^\s]+`},
					Triggers: []string{"website", "trang web", "url", "link"},
				},
				{
					Label:    "IP_ADDRESS",
					Patterns: []string{`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`},
					Triggers: []string{"ip", "địa chỉ ip", "ip address"},
				},
			},
		},
		{
			Name: CategoryCommerce,
			Entities: []model.EntityTypeDefinition{
				{
					Label:    "ORDER_ID",
					Patterns: []string{`\b(?:DH|HD|ORDER|OD)\d{6,10}\b`},
					Triggers: []string{"mã đơn", "đơn hàng", "order"},
				},
				{
					Label:    "TRACKING_CODE",
					Patterns: []string{`\b[A-Z0-9]{10,15}\b`},
					Triggers: []string{"mã vận đơn", "tracking", "vận đơn"},
				},
				{
					Label:    "CONTRACT_NUMBER",
					Patterns: []string{`\b(?:HĐ|HD|CT)\d{6,10}\b`},
					Triggers: []string{"số hợp đồng", "hợp đồng"},
				},
			},
		},
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry of the built-in catalog, constructed once
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New(DefaultCatalog())
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
