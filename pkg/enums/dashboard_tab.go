package enums

import "fmt"

// DashboardTab identifies the active dashboard panel.
type DashboardTab string

const (
	DashboardTabPosts  DashboardTab = "posts"
	DashboardTabCreate DashboardTab = "create"
	DashboardTabManage DashboardTab = "manage"
)

var validDashboardTabs = []DashboardTab{
	DashboardTabPosts,
	DashboardTabCreate,
	DashboardTabManage,
}

func (t DashboardTab) IsValid() bool {
	for _, candidate := range validDashboardTabs {
		if candidate == t {
			return true
		}
	}
	return false
}

func ParseDashboardTab(value string) (DashboardTab, error) {
	for _, candidate := range validDashboardTabs {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid dashboard tab %q", value)
}
