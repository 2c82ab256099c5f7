package repository

import (
	"testing"

	apperrors "train-component-manager/internal/errors"
	"train-component-manager/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TrainComponentRepositoryTestSuite tests the TrainComponentRepository
type TrainComponentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TrainComponentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TrainComponentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTrainComponentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TrainComponentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TrainComponentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TrainComponentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new train component
func (suite *TrainComponentRepositoryTestSuite) TestCreate() {
	component := suite.factories.TrainComponent.Create()

	err := suite.repo.Create(component)

	suite.NoError(err)
	suite.NotZero(component.ID)
	suite.Equal(int64(1), component.Version)
	suite.NotZero(component.CreatedAt)
}

// TestCreateDuplicateUniqueNumber tests that a colliding unique number is
// reported as a distinguishable duplicate error, never a silent second row
func (suite *TrainComponentRepositoryTestSuite) TestCreateDuplicateUniqueNumber() {
	component1 := suite.factories.TrainComponent.WithUniqueNumber("DUP001")
	err := suite.repo.Create(component1)
	suite.NoError(err)

	component2 := suite.factories.TrainComponent.WithUniqueNumber("DUP001")
	err = suite.repo.Create(component2)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrUniqueNumberExists)

	_, total, err := suite.repo.List("", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
}

// TestGetByID tests retrieving a train component by ID
func (suite *TrainComponentRepositoryTestSuite) TestGetByID() {
	component := suite.factories.TrainComponent.WithQuantity(5)
	err := suite.repo.Create(component)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(component.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(component.ID, retrieved.ID)
	suite.Equal(component.Name, retrieved.Name)
	suite.Equal(component.UniqueNumber, retrieved.UniqueNumber)
	suite.NotNil(retrieved.Quantity)
	suite.Equal(5, *retrieved.Quantity)
}

// TestGetByIDNotFound tests retrieving a non-existent train component
func (suite *TrainComponentRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(999999)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListSearch tests the case-insensitive substring filter over
// name and unique number
func (suite *TrainComponentRepositoryTestSuite) TestListSearch() {
	door := suite.factories.TrainComponent.WithUniqueNumber("DR123")
	door.Name = "Door"
	suite.NoError(suite.repo.Create(door))

	window := suite.factories.TrainComponent.WithUniqueNumber("WIN567")
	window.Name = "Window"
	suite.NoError(suite.repo.Create(window))

	components, total, err := suite.repo.List("door", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(components, 1)
	suite.Equal("Door", components[0].Name)

	// Matches on unique number too
	components, total, err = suite.repo.List("dr1", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("DR123", components[0].UniqueNumber)
}

// TestListPagination tests offset pagination with stable id ordering and a
// total that reflects the filtered set
func (suite *TrainComponentRepositoryTestSuite) TestListPagination() {
	for i := 0; i < 5; i++ {
		suite.NoError(suite.repo.Create(suite.factories.TrainComponent.Create()))
	}

	page1, total, err := suite.repo.List("", 2, 0)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(page1, 2)

	page2, total, err := suite.repo.List("", 2, 2)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(page2, 2)

	// Pages do not overlap and ids ascend across them
	suite.Less(page1[0].ID, page1[1].ID)
	suite.Less(page1[1].ID, page2[0].ID)
	suite.Less(page2[0].ID, page2[1].ID)
}

// TestUpdateQuantity tests the conditional quantity write and version bump
func (suite *TrainComponentRepositoryTestSuite) TestUpdateQuantity() {
	component := suite.factories.TrainComponent.Create()
	suite.NoError(suite.repo.Create(component))

	err := suite.repo.UpdateQuantity(component.ID, 7, component.Version)
	suite.NoError(err)

	updated, err := suite.repo.GetByID(component.ID)
	suite.NoError(err)
	suite.NotNil(updated.Quantity)
	suite.Equal(7, *updated.Quantity)
	suite.Equal(component.Version+1, updated.Version)
}

// TestUpdateQuantityStaleVersion tests that a stale read never clobbers a
// racing write: the second update with the original version changes nothing
func (suite *TrainComponentRepositoryTestSuite) TestUpdateQuantityStaleVersion() {
	component := suite.factories.TrainComponent.Create()
	suite.NoError(suite.repo.Create(component))

	staleVersion := component.Version

	// First writer wins
	suite.NoError(suite.repo.UpdateQuantity(component.ID, 10, staleVersion))

	// Second writer still holds the old version and must lose
	err := suite.repo.UpdateQuantity(component.ID, 20, staleVersion)
	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrTrainComponentConflict)

	// The stored quantity is the winner's, never a merge
	current, err := suite.repo.GetByID(component.ID)
	suite.NoError(err)
	suite.Equal(10, *current.Quantity)
}

// TestUpdateQuantityMissingRow tests that the conditional update reports a
// conflict for a row that no longer exists (the service layer distinguishes
// deletion from modification by re-checking existence)
func (suite *TrainComponentRepositoryTestSuite) TestUpdateQuantityMissingRow() {
	err := suite.repo.UpdateQuantity(999999, 5, 1)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrTrainComponentConflict)
}

// TestDelete tests deleting a train component
func (suite *TrainComponentRepositoryTestSuite) TestDelete() {
	component := suite.factories.TrainComponent.Create()
	suite.NoError(suite.repo.Create(component))

	err := suite.repo.Delete(component.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(component.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteNotFound tests deleting a non-existent train component leaves the
// table unchanged
func (suite *TrainComponentRepositoryTestSuite) TestDeleteNotFound() {
	component := suite.factories.TrainComponent.Create()
	suite.NoError(suite.repo.Create(component))

	err := suite.repo.Delete(999999)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, total, err := suite.repo.List("", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
}

// TestExists tests the existence check
func (suite *TrainComponentRepositoryTestSuite) TestExists() {
	component := suite.factories.TrainComponent.Create()
	suite.NoError(suite.repo.Create(component))

	exists, err := suite.repo.Exists(component.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(999999)
	suite.NoError(err)
	suite.False(exists)
}

// TestConcurrentUpdates tests that two racing conditional updates against the
// same row result in exactly one success and one conflict
func (suite *TrainComponentRepositoryTestSuite) TestConcurrentUpdates() {
	component := suite.factories.TrainComponent.Create()
	suite.NoError(suite.repo.Create(component))

	version := component.Version
	results := make(chan error, 2)

	go func() { results <- suite.repo.UpdateQuantity(component.ID, 11, version) }()
	go func() { results <- suite.repo.UpdateQuantity(component.ID, 22, version) }()

	var successes, conflicts int
	for i := 0; i < 2; i++ {
		err := <-results
		if err == nil {
			successes++
		} else {
			suite.ErrorIs(err, apperrors.ErrTrainComponentConflict)
			conflicts++
		}
	}

	suite.Equal(1, successes)
	suite.Equal(1, conflicts)

	current, err := suite.repo.GetByID(component.ID)
	suite.NoError(err)
	suite.NotNil(current.Quantity)
	suite.Contains([]int{11, 22}, *current.Quantity)
	suite.Equal(version+1, current.Version)
}

// TestTrainComponentRepositoryTestSuite runs the test suite
func TestTrainComponentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TrainComponentRepositoryTestSuite))
}
