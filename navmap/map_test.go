package navmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arcway/jpsgrid/navmap"
)

// ScenarioSuite runs the concrete scenarios from spec.md §8 as a single
// fixture, mirroring the larger testify suites in the teacher's flow
// package.
type ScenarioSuite struct {
	suite.Suite
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

func (s *ScenarioSuite) TestStraightLineNoObstacles() {
	m, err := navmap.New(5, 1, nil)
	require.NoError(s.T(), err)
	got, err := m.FindPathByGrid(0, 0, 4, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []navmap.GridPoint{{X: 0, Y: 0}, {X: 4, Y: 0}}, got)
}

func (s *ScenarioSuite) TestDiagonalNoObstacles() {
	m, err := navmap.New(5, 5, nil)
	require.NoError(s.T(), err)
	got, err := m.FindPathByGrid(0, 0, 4, 4)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []navmap.GridPoint{{X: 0, Y: 0}, {X: 4, Y: 4}}, got)
}

func (s *ScenarioSuite) TestSingleObstacleDetour() {
	m, err := navmap.New(5, 5, []navmap.GridPoint{{X: 2, Y: 2}})
	require.NoError(s.T(), err)
	got, err := m.FindPathByGrid(0, 2, 4, 2)
	require.NoError(s.T(), err)
	require.True(s.T(), len(got) >= 3, "expected at least one detour bend, got %v", got)
	require.Equal(s.T(), navmap.GridPoint{X: 0, Y: 2}, got[0])
	require.Equal(s.T(), navmap.GridPoint{X: 4, Y: 2}, got[len(got)-1])
}

func (s *ScenarioSuite) TestWallWithGap() {
	obstacles := make([]navmap.GridPoint, 0, 4)
	for y := 0; y < 5; y++ {
		if y != 2 {
			obstacles = append(obstacles, navmap.GridPoint{X: 3, Y: y})
		}
	}
	m, err := navmap.New(7, 5, obstacles)
	require.NoError(s.T(), err)
	got, err := m.FindPathByGrid(0, 2, 6, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []navmap.GridPoint{{X: 0, Y: 2}, {X: 3, Y: 2}, {X: 6, Y: 2}}, got)
}

func (s *ScenarioSuite) TestUnreachable() {
	obstacles := make([]navmap.GridPoint, 0, 5)
	for y := 0; y < 5; y++ {
		obstacles = append(obstacles, navmap.GridPoint{X: 2, Y: y})
	}
	m, err := navmap.New(5, 5, obstacles)
	require.NoError(s.T(), err)
	got, err := m.FindPathByGrid(0, 0, 4, 0)
	require.NoError(s.T(), err)
	require.Empty(s.T(), got)
}

func (s *ScenarioSuite) TestCornerCutForbidden() {
	m, err := navmap.New(3, 3, []navmap.GridPoint{{X: 1, Y: 0}, {X: 0, Y: 1}})
	require.NoError(s.T(), err)
	got, err := m.FindPathByGrid(0, 0, 1, 1)
	require.NoError(s.T(), err)
	require.Empty(s.T(), got)
}

func (s *ScenarioSuite) TestFractionalEndpoints() {
	m, err := navmap.New(5, 5, nil)
	require.NoError(s.T(), err)
	got, err := m.FindPath(0.2, 0.2, 4.8, 4.8)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), got)
	require.Equal(s.T(), navmap.Point{X: 0.2, Y: 0.2}, got[0])
	require.Equal(s.T(), navmap.Point{X: 4.8, Y: 4.8}, got[len(got)-1])
	for i := 0; i+1 < len(got); i++ {
		a, b := got[i], got[i+1]
		require.True(s.T(), m.CheckLineWalkable(a.X, a.Y, b.X, b.Y), "segment %v-%v not walkable", a, b)
	}
}

func (s *ScenarioSuite) TestStartEqualsEnd() {
	m, err := navmap.New(3, 3, nil)
	require.NoError(s.T(), err)
	got, err := m.FindPathByGrid(1, 1, 1, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []navmap.GridPoint{{X: 1, Y: 1}}, got)
}

func (s *ScenarioSuite) TestMarkConnectedRejectsDifferentComponents() {
	obstacles := make([]navmap.GridPoint, 0, 5)
	for y := 0; y < 5; y++ {
		obstacles = append(obstacles, navmap.GridPoint{X: 2, Y: y})
	}
	m, err := navmap.New(5, 5, obstacles)
	require.NoError(s.T(), err)
	m.MarkConnected()
	got, err := m.FindPathByGrid(0, 0, 4, 0)
	require.NoError(s.T(), err)
	require.Empty(s.T(), got)
}

func TestNew_RejectsInvalidDimensions(t *testing.T) {
	_, err := navmap.New(0, 5, nil)
	require.ErrorIs(t, err, navmap.ErrConfigInvalid)
}

func TestNew_RejectsOutOfBoundsObstacle(t *testing.T) {
	_, err := navmap.New(3, 3, []navmap.GridPoint{{X: 9, Y: 9}})
	require.ErrorIs(t, err, navmap.ErrConfigInvalid)
}

func TestFindPathByGrid_RejectsBlockedEndpoint(t *testing.T) {
	m, err := navmap.New(3, 3, []navmap.GridPoint{{X: 0, Y: 0}})
	require.NoError(t, err)
	_, err = m.FindPathByGrid(0, 0, 2, 2)
	require.ErrorIs(t, err, navmap.ErrBlockedEndpoint)
}

func TestFindPathByGrid_RejectsOutOfBounds(t *testing.T) {
	m, err := navmap.New(3, 3, nil)
	require.NoError(t, err)
	_, err = m.FindPathByGrid(0, 0, 9, 9)
	require.ErrorIs(t, err, navmap.ErrOutOfBounds)
}

func TestAddBlockClearBlockRoundTrip(t *testing.T) {
	m, err := navmap.New(3, 3, nil)
	require.NoError(t, err)
	require.NoError(t, m.AddBlock(1, 1))
	require.NoError(t, m.ClearBlock(1, 1))
	got, err := m.FindPathByGrid(0, 0, 2, 2)
	require.NoError(t, err)
	require.NotEmpty(t, got)
}

func TestDump_ShowsObstacles(t *testing.T) {
	m, err := navmap.New(3, 1, []navmap.GridPoint{{X: 1, Y: 0}})
	require.NoError(t, err)
	require.Equal(t, ".*.\n", m.Dump())
}
