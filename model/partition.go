/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package model

import "dirpx.dev/securityhub/enum"

// Partition is the AWS partition a resource belongs to.
type Partition string

const (
	PartitionAws      Partition = "aws"        // standard regions
	PartitionAwsCn    Partition = "aws-cn"     // China regions
	PartitionAwsUsGov Partition = "aws-us-gov" // GovCloud (US) regions
)

const partitionName = "Partition"

// PartitionValues returns every Partition in declaration order.
func PartitionValues() []Partition {
	return []Partition{PartitionAws, PartitionAwsCn, PartitionAwsUsGov}
}

// ParsePartition returns the Partition whose wire string is exactly s.
func ParsePartition(s string) (Partition, error) {
	switch v := Partition(s); v {
	case PartitionAws, PartitionAwsCn, PartitionAwsUsGov:
		return v, nil
	}
	return "", enum.Reject(partitionName, s)
}

// MustParsePartition is like ParsePartition but panics on error.
func MustParsePartition(s string) Partition {
	v, err := ParsePartition(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (p Partition) String() string { return string(p) }

// IsValid reports whether p is a declared value.
func (p Partition) IsValid() bool {
	_, err := ParsePartition(string(p))
	return err == nil
}

func (p Partition) MarshalText() ([]byte, error) {
	return enum.MarshalText(partitionName, p, p.IsValid())
}

func (p *Partition) UnmarshalText(text []byte) error {
	return enum.UnmarshalText(text, p, ParsePartition)
}

func (p *Partition) UnmarshalJSON(data []byte) error {
	return enum.UnmarshalJSON(partitionName, data, p, ParsePartition)
}
