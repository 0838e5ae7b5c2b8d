package entity

import (
	"gorm.io/gorm"
)

const (
	AlertActive = "active"
)

type SecurityAlert struct {
	gorm.Model
	Title     string `gorm:"not null" json:"title"`
	Message   string `json:"message"`
	Severity  string `gorm:"not null;default:medium" json:"severity"`
	PhotoPath string `json:"-"`
	Status    string `gorm:"not null;default:active" json:"status"`

	AgentID  uint   `gorm:"index;not null" json:"agentId"`
	Agent    User   `json:"-"`
	DriverID *uint  `json:"driverId,omitempty"`
	Driver   *User  `json:"-"`
	TruckID  *uint  `json:"truckId,omitempty"`
	Truck    *Truck `json:"-"`
}

func (SecurityAlert) TableName() string { return "security_alerts" }
