package auth

import "errors"

// Роли платформы. Иерархия задается данными (ранги), а не наследованием.
const (
	RoleFreelancer = "freelancer"
	RoleEmployer   = "employer"
	RoleSupport    = "support"
	RoleManager    = "manager"
	RoleAdmin      = "admin"
)

// RoleRank - ранг каждой роли.
// freelancer/employer(0) < support(1) < manager(2) < admin(3)
var RoleRank = map[string]int{
	RoleFreelancer: 0,
	RoleEmployer:   0,
	RoleSupport:    1,
	RoleManager:    2,
	RoleAdmin:      3,
}

// RankOf возвращает ранг роли, -1 для неизвестной роли
func RankOf(role string) int {
	rank, ok := RoleRank[role]
	if !ok {
		return -1
	}
	return rank
}

// AtLeast сообщает, достаточен ли ранг роли role для порога min
func AtLeast(role, min string) bool {
	r := RankOf(role)
	m := RankOf(min)
	if r < 0 || m < 0 {
		return false
	}
	return r >= m
}

// IsStaff - support и выше
func IsStaff(role string) bool {
	return AtLeast(role, RoleSupport)
}

// AssignableByManager сообщает, может ли менеджер назначить/снять роль.
// Менеджеру запрещены обе стороны перехода с участием admin/manager.
func AssignableByManager(role string) bool {
	return role != RoleAdmin && role != RoleManager
}

// ValidateRole проверяет валидность роли
func ValidateRole(role string) error {
	if _, ok := RoleRank[role]; !ok {
		return errors.New("invalid role")
	}
	return nil
}

// RegistrableRole - роли, доступные при самостоятельной регистрации
func RegistrableRole(role string) bool {
	return role == RoleFreelancer || role == RoleEmployer
}
