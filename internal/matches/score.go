package matches

// GoalValue is the number of points one goal is worth.
const GoalValue = 3

// TotalScore converts goals and points into a single points total.
func TotalScore(goals, points int) int {
	return goals*GoalValue + points
}
