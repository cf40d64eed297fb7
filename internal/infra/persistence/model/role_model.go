package model

// RoleModel mirrors the seeded 'roles' catalog table.
type RoleModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(50);unique;not null"`
	GuardName string `gorm:"type:varchar(50);not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
