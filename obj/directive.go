package obj

//go:generate go tool stringer -type=directive -linecomment

type directive uint8

const (
	directiveUnknown directive = iota // unknown

	// geometry
	directiveVertex          // v
	directiveNormal          // vn
	directiveUV              // vt
	directiveFace            // f
	directiveGroup           // g
	directiveUseMaterial     // usemtl
	directiveMaterialLibrary // mtllib

	// material library
	directiveNewMaterial  // newmtl
	directiveAmbient      // Ka
	directiveDiffuse      // Kd
	directiveSpecular     // Ks
	directiveEmissive     // Ke
	directiveTransmission // Tf
	directiveDissolve     // d
	directiveShininess    // Ns
	directiveAmbientMap   // map_Ka
	directiveDiffuseMap   // map_Kd
	directiveSpecularMap  // map_Ks
	directiveEmissiveMap  // map_Ke
	directiveDissolveMap  // map_d
	directiveShininessMap // map_Ns
	directiveBumpMap      // map_bump
)

var directives = func() map[string]directive {
	byName := make(map[string]directive)
	for d := directiveVertex; d <= directiveBumpMap; d++ {
		byName[d.String()] = d
	}

	return byName
}()

func lookupDirective(command []byte) directive {
	if d, ok := directives[string(command)]; ok {
		return d
	}

	return directiveUnknown
}
