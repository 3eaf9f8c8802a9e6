package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/lost-and-found-backend/internal/domain"
	"github.com/sandeepkv93/lost-and-found-backend/internal/observability"

	"gorm.io/gorm"
)

var demoOwners = []domain.Owner{
	{Name: "Ana Torres", Phone: "+54 11 5555-0101", Email: "ana@example.com", Address: "Av. Corrientes 1234"},
	{Name: "Bruno Díaz", Phone: "+54 11 5555-0202", Email: "bruno@example.com", Address: "Calle Florida 567"},
}

var demoItems = map[string][]domain.LostItem{
	"Ana Torres": {
		{Name: "Umbrella", Description: "Black folding umbrella with wooden handle", Found: false},
		{Name: "Wallet", Description: "Brown leather wallet, no cash", Found: true},
	},
	"Bruno Díaz": {
		{Name: "Keys", Description: "Three keys on a red keyring", Found: false},
	},
}

type SeedReport struct {
	CreatedOwners int  `json:"created_owners"`
	CreatedItems  int  `json:"created_items"`
	Noop          bool `json:"noop"`
}

// SeedDemo inserts a small set of owners and items. Owners are matched by
// name so repeated runs do not duplicate rows.
func SeedDemo(db *gorm.DB) (*SeedReport, error) {
	start := time.Now()
	defer func() {
		observability.RecordDatabaseStartupDuration(context.Background(), "seed", time.Since(start))
	}()

	report := &SeedReport{}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, o := range demoOwners {
			owner := o
			res := tx.Where("name = ?", owner.Name).FirstOrCreate(&owner)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				continue
			}
			report.CreatedOwners++
			for _, it := range demoItems[owner.Name] {
				item := it
				item.OwnerID = owner.ID
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				report.CreatedItems++
			}
		}
		return nil
	})
	if err != nil {
		observability.RecordDatabaseStartupEvent(context.Background(), "seed", "error")
		return nil, err
	}
	report.Noop = report.CreatedOwners == 0 && report.CreatedItems == 0
	observability.RecordDatabaseStartupEvent(context.Background(), "seed", "success")
	return report, nil
}

// DemoPlan describes what SeedDemo would insert into an empty database.
func DemoPlan() []string {
	plan := make([]string, 0, len(demoOwners))
	for _, o := range demoOwners {
		names := make([]string, 0, len(demoItems[o.Name]))
		for _, it := range demoItems[o.Name] {
			names = append(names, it.Name)
		}
		plan = append(plan, fmt.Sprintf("owner %q with items: %s", o.Name, strings.Join(names, ", ")))
	}
	return plan
}
