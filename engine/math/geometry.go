package math

import "github.com/spaghettifunk/gxmath/engine/core"

// GeometryGenerateNormals writes the face normal of every indexed triangle to
// its three vertices. Shared vertices keep the normal of the last triangle.
func GeometryGenerateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i+0], indices[i+1], indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)
		normal := edge1.Cross(edge2).Normalized()

		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

// GeometryGenerateTangents fills Tangent and Bitangent of every vertex from
// the UV gradients of the triangle it belongs to.
func GeometryGenerateTangents(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		corners := [3]uint32{indices[i+0], indices[i+1], indices[i+2]}

		var positions [3]Vec3
		var uvs [3]Vec2
		for c, index := range corners {
			positions[c] = vertices[index].Position
			uvs[c] = vertices[index].Texcoord
		}

		for c, index := range corners {
			tangent, bitangent := GetTangentBitangent(uint8(c), positions, uvs)
			vertices[index].Tangent = tangent
			vertices[index].Bitangent = bitangent
		}
	}
}

func Vertex3dEqual(vert0 Vertex3D, vert1 Vertex3D) bool {
	return vert0.Position.Compare(vert1.Position, K_FLOAT_EPSILON) &&
		vert0.Normal.Compare(vert1.Normal, K_FLOAT_EPSILON) &&
		vert0.Texcoord.Compare(vert1.Texcoord, K_FLOAT_EPSILON) &&
		vert0.Colour.Compare(vert1.Colour, K_FLOAT_EPSILON) &&
		vert0.Tangent.Compare(vert1.Tangent, K_FLOAT_EPSILON) &&
		vert0.Bitangent.Compare(vert1.Bitangent, K_FLOAT_EPSILON)
}

func reassignIndex(indices []uint32, from uint32, to uint32) {
	for i := range indices {
		if indices[i] == from {
			indices[i] = to
		} else if indices[i] > from {
			// Pull in all indices higher than 'from' by 1.
			indices[i]--
		}
	}
}

// GeometryDeduplicateVertices drops vertices equal within K_FLOAT_EPSILON and
// rewrites indices in place to point at the surviving copies.
func GeometryDeduplicateVertices(vertices []Vertex3D, indices []uint32) []Vertex3D {
	unique := make([]Vertex3D, 0, len(vertices))
	removed := uint32(0)

	for v := range vertices {
		found := false
		for u := range unique {
			if Vertex3dEqual(vertices[v], unique[u]) {
				reassignIndex(indices, uint32(v)-removed, uint32(u))
				found = true
				removed++
				break
			}
		}

		if !found {
			unique = append(unique, vertices[v])
		}
	}

	core.LogDebug("geometry_deduplicate_vertices: removed %d vertices, orig/now %d/%d.", removed, len(vertices), len(unique))

	return unique
}
