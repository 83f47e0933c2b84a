package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryAdd(t *testing.T) {
	inv := make(Inventory)
	key := InstanceKey{InstanceType: "m4.large", AvailabilityZone: "us-east-1a"}

	inv.Add(key, 3)
	inv.Add(key, 2)
	inv.Add(InstanceKey{InstanceType: "c4.xlarge", AvailabilityZone: "us-east-1b"}, 1)

	assert.Equal(t, 5, inv[key])
	assert.Equal(t, 6, inv.Total())
}

func TestInventoryCloneIsIndependent(t *testing.T) {
	key := InstanceKey{InstanceType: "m4.large", AvailabilityZone: "us-east-1a"}
	inv := Inventory{key: 4}

	clone := inv.Clone()
	clone.Add(key, 10)

	assert.Equal(t, 4, inv[key])
	assert.Equal(t, 14, clone[key])
}

func TestInventoryKeysSorted(t *testing.T) {
	inv := Inventory{
		{InstanceType: "m4.large", AvailabilityZone: "us-east-1b"}:  1,
		{InstanceType: "c4.xlarge", AvailabilityZone: "us-east-1c"}: 1,
		{InstanceType: "m4.large", AvailabilityZone: "us-east-1a"}:  1,
		{InstanceType: "c4.xlarge", AvailabilityZone: "us-east-1a"}: 1,
	}

	assert.Equal(t, []InstanceKey{
		{InstanceType: "c4.xlarge", AvailabilityZone: "us-east-1a"},
		{InstanceType: "c4.xlarge", AvailabilityZone: "us-east-1c"},
		{InstanceType: "m4.large", AvailabilityZone: "us-east-1a"},
		{InstanceType: "m4.large", AvailabilityZone: "us-east-1b"},
	}, inv.Keys())
}

func TestAccountIDsSorted(t *testing.T) {
	byAccount := AccountInventory{
		"333333333333": {},
		"111111111111": {},
		"222222222222": {},
	}

	assert.Equal(t, []string{"111111111111", "222222222222", "333333333333"}, byAccount.AccountIDs())
}
