package inmem

import (
	"fmt"
	"strings"
	"time"

	"adminboard/internal/model"

	"github.com/google/uuid"
)

var seedGroupNames = []string{
	"Engineering", "Design", "Marketing", "Support", "Finance", "QA",
}

var seedFirstNames = []string{
	"Alice", "Bob", "Carol", "David", "Elena", "Frank", "Grace", "Hugo",
	"Irene", "Jack", "Karen", "Liam", "Mona", "Nathan", "Olivia", "Peter",
}

var seedLastNames = []string{
	"Nguyen", "Smith", "Garcia", "Chen", "Patel", "Kowalski", "Okafor",
	"Larsen", "Moreau", "Tanaka",
}

// seedEpoch anchors generated creation timestamps so listing order is
// reproducible across restarts.
var seedEpoch = time.Date(2023, time.January, 2, 9, 0, 0, 0, time.UTC)

// seedID derives a stable UUID from a seed name.
func seedID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("adminboard/"+kind+"/"+name)).String()
}

// SeedGroups returns the fixed set of groups referenced by seeded users.
func SeedGroups() []model.Group {
	groups := make([]model.Group, len(seedGroupNames))
	for i, name := range seedGroupNames {
		groups[i] = model.Group{
			ID:   seedID("groups", name),
			Name: name,
		}
	}
	return groups
}

// SeedUsers generates a deterministic set of n users spread across the
// seed groups. Roughly one in four users starts out inactive so both
// status filters return data out of the box.
func SeedUsers(n int) []model.User {
	groups := SeedGroups()
	users := make([]model.User, 0, n)

	for i := 0; i < n; i++ {
		first := seedFirstNames[i%len(seedFirstNames)]
		last := seedLastNames[(i/len(seedFirstNames)+i)%len(seedLastNames)]
		name := first + " " + last
		email := fmt.Sprintf("%s.%s@example.com", strings.ToLower(first), strings.ToLower(last))

		status := model.StatusActive
		if i%4 == 3 {
			status = model.StatusInactive
		}

		memberships := []model.Group{groups[i%len(groups)]}
		if i%3 == 0 {
			memberships = append(memberships, groups[(i+2)%len(groups)])
		}

		users = append(users, model.User{
			ID:          seedID("users", email),
			DisplayName: name,
			Email:       email,
			Status:      status,
			CreatedAt:   seedEpoch.Add(time.Duration(i) * 13 * time.Hour),
			Groups:      memberships,
		})
	}

	return users
}
