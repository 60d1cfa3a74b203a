package domain

import "time"

// Tenant бизнес-аккаунт, единица изоляции данных.
// Slug — выбранный владельцем уникальный URL-псевдоним публичной
// страницы записи; nil, если псевдоним не задан.
type Tenant struct {
	ID           string
	Email        string
	PasswordHash string
	BusinessName string
	Slug         *string

	TrialEnds          time.Time
	SubscriptionActive bool
	SubscriptionEnds   *time.Time
	LastPaymentID      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAccessAllowed возвращает true, если владельцу доступен кабинет:
// активная подписка, срок которой не истёк, либо не истёкший триал
func (t *Tenant) IsAccessAllowed(now time.Time) bool {
	if t.SubscriptionActive {
		if t.SubscriptionEnds != nil && now.After(*t.SubscriptionEnds) {
			return false
		}
		return true
	}
	return !now.After(t.TrialEnds)
}

// TrialDaysLeft возвращает число полных дней до конца триала (минимум 0)
func (t *Tenant) TrialDaysLeft(now time.Time) int {
	days := int(t.TrialEnds.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
