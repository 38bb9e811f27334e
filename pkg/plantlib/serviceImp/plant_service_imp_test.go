package serviceImp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"plot/entities"
)

type fakeRepo struct {
	plants []entities.Plant
}

func (f *fakeRepo) All() ([]entities.Plant, error) { return f.plants, nil }

func (f *fakeRepo) FindByName(name string) (*entities.Plant, error) {
	for i := range f.plants {
		if strings.EqualFold(f.plants[i].Name, name) {
			return &f.plants[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Create(p *entities.Plant) error {
	f.plants = append(f.plants, *p)
	return nil
}

func (f *fakeRepo) Upsert(p *entities.Plant) error {
	for i := range f.plants {
		if strings.EqualFold(f.plants[i].Name, p.Name) {
			f.plants[i] = *p
			return nil
		}
	}
	f.plants = append(f.plants, *p)
	return nil
}

func (f *fakeRepo) Delete(id uint) error { return nil }

func ip2(v int) *int { return &v }

func TestCreateRequiresName(t *testing.T) {
	svc := New(&fakeRepo{})
	err := svc.Create(&entities.Plant{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)

	err = svc.Create(&entities.Plant{Name: "  Dill  "})
	require.NoError(t, err)
	p, err := svc.FindByName("dill")
	require.NoError(t, err)
	assert.Equal(t, "Dill", p.Name)
}

func TestXLSXRoundTrip(t *testing.T) {
	src := &fakeRepo{plants: []entities.Plant{
		{
			Name: "Tomatoes", LatinName: "Solanum lycopersicum", Symbol: "T",
			PlantType: "vegetable", LifeCycle: "annual",
			PlantingSeasons:   []string{"summer"},
			DaysToGermination: ip2(7), DaysBeforeTransplantReady: ip2(42),
			TransplantToHarvestDays: ip2(65), DaysToHarvest: ip2(75),
			SpacingInches: 24, Companions: []string{"Basil", "Marigolds"},
		},
		{
			Name: "Carrots", PlantType: "vegetable", DirectSow: true,
			DaysToGermination: ip2(14), DaysToHarvest: ip2(70), SpacingInches: 2,
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, New(src).ExportXLSX(&buf))

	dst := &fakeRepo{}
	imported, skipped, err := New(dst).ImportXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	assert.Equal(t, 0, skipped)

	tom, err := dst.FindByName("Tomatoes")
	require.NoError(t, err)
	assert.False(t, tom.DirectSow)
	require.NotNil(t, tom.DaysBeforeTransplantReady)
	assert.Equal(t, 42, *tom.DaysBeforeTransplantReady)
	assert.Equal(t, []string{"Basil", "Marigolds"}, tom.Companions)
	assert.Equal(t, 24.0, tom.SpacingInches)

	car, err := dst.FindByName("Carrots")
	require.NoError(t, err)
	assert.True(t, car.DirectSow)
	assert.Nil(t, car.TransplantToHarvestDays)
	require.NotNil(t, car.DaysToHarvest)
	assert.Equal(t, 70, *car.DaysToHarvest)
}

func TestImportSkipsNamelessRows(t *testing.T) {
	src := &fakeRepo{plants: []entities.Plant{{Name: "Sage"}, {Name: ""}}}
	var buf bytes.Buffer
	require.NoError(t, New(src).ExportXLSX(&buf))

	dst := &fakeRepo{}
	imported, skipped, err := New(dst).ImportXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Equal(t, 1, skipped)
}

func TestImportRejectsGarbage(t *testing.T) {
	_, _, err := New(&fakeRepo{}).ImportXLSX(strings.NewReader("not a workbook"))
	assert.Error(t, err)
}
